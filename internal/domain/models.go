package domain

import "strings"

// Label identifies one of the three answer options.
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
	LabelC Label = "C"
)

// Labels lists option labels in display order.
var Labels = [...]Label{LabelA, LabelB, LabelC}

// Valid reports whether l is one of A, B or C.
func (l Label) Valid() bool {
	return l == LabelA || l == LabelB || l == LabelC
}

// Question models an MCQ question with exactly one correct option.
type Question struct {
	Prompt  string           `json:"prompt"`
	Options map[Label]string `json:"options"`
	Correct Label            `json:"correct"`
}

// Quiz is an ordered collection of questions.
type Quiz struct {
	ID        string     `json:"id"`
	Questions []Question `json:"questions"`
}

// Record is the flat shape a question source delivers.
type Record struct {
	Question string
	OptionA  string
	OptionB  string
	OptionC  string
	Answer   string
}

// ToQuestion validates the record and converts it. Every field must be
// non-empty and the answer must be exactly A, B or C.
func (r Record) ToQuestion() (Question, error) {
	fields := [...]struct{ name, value string }{
		{"question", r.Question},
		{"optionA", r.OptionA},
		{"optionB", r.OptionB},
		{"optionC", r.OptionC},
		{"answer", r.Answer},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return Question{}, malformed("empty field %s", f.name)
		}
	}
	answer := Label(strings.TrimSpace(r.Answer))
	if !answer.Valid() {
		return Question{}, malformed("answer %q is not one of A|B|C", r.Answer)
	}
	return Question{
		Prompt: r.Question,
		Options: map[Label]string{
			LabelA: r.OptionA,
			LabelB: r.OptionB,
			LabelC: r.OptionC,
		},
		Correct: answer,
	}, nil
}

// Phase is the stage of a quiz session.
type Phase int

const (
	PhaseQuiz Phase = iota
	PhaseAwaitingAdvance
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseQuiz:
		return "QUIZ"
	case PhaseAwaitingAdvance:
		return "AWAITING_ADVANCE"
	case PhaseResult:
		return "RESULT"
	}
	return "UNKNOWN"
}

// Tier classifies final performance.
type Tier int

const (
	TierEmpty Tier = iota
	TierNeedsWork
	TierPass
	TierPerfect
)

func (t Tier) String() string {
	switch t {
	case TierEmpty:
		return "EMPTY"
	case TierNeedsWork:
		return "NEEDS_WORK"
	case TierPass:
		return "PASS"
	case TierPerfect:
		return "PERFECT"
	}
	return "UNKNOWN"
}

// PassPercent is the minimum percentage for TierPass.
const PassPercent = 60

// TierFor classifies score out of total. Integer arithmetic keeps 2/3 and
// friends away from float rounding at the boundaries.
func TierFor(score, total int) Tier {
	switch {
	case total <= 0:
		return TierEmpty
	case score >= total:
		return TierPerfect
	case score*100 >= PassPercent*total:
		return TierPass
	default:
		return TierNeedsWork
	}
}

// Feedback is the flash shown after an answer is confirmed.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

// Answer summarizes a confirmed answer.
type Answer struct {
	Correct  bool
	Feedback Feedback
}

// RegionID names an interactive area of the screen.
type RegionID int

const (
	RegionOptionA RegionID = iota
	RegionOptionB
	RegionOptionC
	RegionRestart
)

func (id RegionID) String() string {
	switch id {
	case RegionOptionA:
		return "OptionA"
	case RegionOptionB:
		return "OptionB"
	case RegionOptionC:
		return "OptionC"
	case RegionRestart:
		return "RestartButton"
	}
	return "Unknown"
}

// Label returns the option label for option regions.
func (id RegionID) Label() (Label, bool) {
	switch id {
	case RegionOptionA:
		return LabelA, true
	case RegionOptionB:
		return LabelB, true
	case RegionOptionC:
		return LabelC, true
	}
	return "", false
}

// Region is a rectangle in viewport coordinates.
type Region struct {
	ID     RegionID
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether (x, y) lies strictly inside the region.
func (r Region) Contains(x, y float64) bool {
	return x > r.X && x < r.X+r.Width && y > r.Y && y < r.Y+r.Height
}
