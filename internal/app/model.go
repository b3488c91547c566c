package app

import (
	"fmt"

	"quiz-presenter/internal/domain"
)

// AdvanceCanceler drops any pending delayed advance. Model.Reset calls it so
// a stale timer can never advance a freshly reset quiz.
type AdvanceCanceler interface {
	CancelAll()
}

// Model is the quiz state machine. It is not safe for concurrent use; a
// Session drives it from a single goroutine.
type Model struct {
	questions []domain.Question
	canceler  AdvanceCanceler

	index    int
	score    int
	selected domain.Label
	phase    domain.Phase
}

// Snapshot is a read-only copy of the model state for rendering.
type Snapshot struct {
	Index    int
	Total    int
	Score    int
	Selected domain.Label
	Phase    domain.Phase
	// Question is the question at Index while one exists; it stays set during
	// AWAITING_ADVANCE so the screen keeps showing it.
	Question *domain.Question
}

// NewModel creates a model positioned at the first question. canceler may be nil.
func NewModel(questions []domain.Question, canceler AdvanceCanceler) *Model {
	m := &Model{
		questions: append([]domain.Question(nil), questions...),
		canceler:  canceler,
	}
	m.Reset()
	return m
}

// Select arms label on the first tap and confirms it on a second tap of the
// same label. Confirmation returns the answer outcome; arming returns ok=false.
func (m *Model) Select(label domain.Label) (answer domain.Answer, confirmed bool, err error) {
	if m.phase != domain.PhaseQuiz {
		return domain.Answer{}, false, fmt.Errorf("select in %s: %w", m.phase, domain.ErrInvalidState)
	}
	if !m.hasOption(label) {
		return domain.Answer{}, false, fmt.Errorf("select %q: %w: unknown label", label, domain.ErrPrecondition)
	}
	if label != m.selected {
		m.selected = label
		return domain.Answer{}, false, nil
	}
	answer, err = m.ConfirmAnswer(label)
	return answer, err == nil, err
}

// ConfirmAnswer scores the armed label and moves to AWAITING_ADVANCE.
func (m *Model) ConfirmAnswer(label domain.Label) (domain.Answer, error) {
	if m.phase != domain.PhaseQuiz {
		return domain.Answer{}, fmt.Errorf("confirm in %s: %w", m.phase, domain.ErrInvalidState)
	}
	if m.selected == "" || m.selected != label {
		return domain.Answer{}, fmt.Errorf("confirm %q with %q selected: %w", label, m.selected, domain.ErrPrecondition)
	}

	correct := label == m.questions[m.index].Correct
	feedback := domain.FeedbackIncorrect
	if correct {
		m.score++
		feedback = domain.FeedbackCorrect
	}
	m.phase = domain.PhaseAwaitingAdvance
	return domain.Answer{Correct: correct, Feedback: feedback}, nil
}

// Advance moves past the answered question.
func (m *Model) Advance() error {
	if m.phase != domain.PhaseAwaitingAdvance {
		return fmt.Errorf("advance in %s: %w", m.phase, domain.ErrInvalidState)
	}
	m.index++
	m.selected = ""
	m.phase = m.phaseAt(m.index)
	return nil
}

// Reset returns to the first question and cancels any pending advance.
func (m *Model) Reset() {
	m.index = 0
	m.score = 0
	m.selected = ""
	m.phase = m.phaseAt(0)
	if m.canceler != nil {
		m.canceler.CancelAll()
	}
}

// CurrentQuestion returns the question being asked. Only valid in QUIZ.
func (m *Model) CurrentQuestion() (domain.Question, error) {
	if m.phase != domain.PhaseQuiz || m.index >= len(m.questions) {
		return domain.Question{}, fmt.Errorf("question %d of %d in %s: %w", m.index+1, len(m.questions), m.phase, domain.ErrOutOfRange)
	}
	return m.questions[m.index], nil
}

// Phase is the current screen.
func (m *Model) Phase() domain.Phase { return m.phase }

// Score counts correct answers since the last reset.
func (m *Model) Score() int { return m.score }

// Index is the position of the current question, len(questions) on RESULT.
func (m *Model) Index() int { return m.index }

// Total is the number of questions in the set.
func (m *Model) Total() int { return len(m.questions) }

// Selected returns the armed label, if any.
func (m *Model) Selected() (domain.Label, bool) {
	return m.selected, m.selected != ""
}

// Tier classifies the current score against the whole set.
func (m *Model) Tier() domain.Tier {
	return domain.TierFor(m.score, len(m.questions))
}

// Ratio returns score / total.
func (m *Model) Ratio() (float64, error) {
	if len(m.questions) == 0 {
		return 0, domain.ErrEmptyQuestionSet
	}
	return float64(m.score) / float64(len(m.questions)), nil
}

// Snapshot copies the state for a frame.
func (m *Model) Snapshot() Snapshot {
	snap := Snapshot{
		Index:    m.index,
		Total:    len(m.questions),
		Score:    m.score,
		Selected: m.selected,
		Phase:    m.phase,
	}
	if m.index < len(m.questions) {
		q := m.questions[m.index]
		snap.Question = &q
	}
	return snap
}

func (m *Model) hasOption(label domain.Label) bool {
	if !label.Valid() || m.index >= len(m.questions) {
		return false
	}
	_, ok := m.questions[m.index].Options[label]
	return ok
}

// phaseAt keeps phase == RESULT iff index == len(questions), which also
// covers an empty question set.
func (m *Model) phaseAt(index int) domain.Phase {
	if index >= len(m.questions) {
		return domain.PhaseResult
	}
	return domain.PhaseQuiz
}
