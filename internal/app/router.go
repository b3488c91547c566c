package app

import "quiz-presenter/internal/domain"

// ActionKind is what a pointer press asks the model to do.
type ActionKind int

const (
	ActionSelectOrConfirm ActionKind = iota + 1
	ActionReset
)

// Action is the routed result of a pointer press.
type Action struct {
	Kind  ActionKind
	Label domain.Label
}

// Router maps pointer coordinates to actions. It holds no state.
type Router struct{}

// Route hit-tests regions in order; the first containing region wins. Misses
// and regions inactive in phase produce ok=false.
func (Router) Route(x, y float64, phase domain.Phase, regions []domain.Region) (Action, bool) {
	r, ok := hit(x, y, regions)
	if !ok {
		return Action{}, false
	}
	switch phase {
	case domain.PhaseQuiz:
		if label, isOption := r.ID.Label(); isOption {
			return Action{Kind: ActionSelectOrConfirm, Label: label}, true
		}
	case domain.PhaseResult:
		if r.ID == domain.RegionRestart {
			return Action{Kind: ActionReset}, true
		}
	}
	return Action{}, false
}

// Hover reports whether (x, y) is over a region that is actionable in phase.
func (r Router) Hover(x, y float64, phase domain.Phase, regions []domain.Region) bool {
	_, ok := r.Route(x, y, phase, regions)
	return ok
}

func hit(x, y float64, regions []domain.Region) (domain.Region, bool) {
	for _, r := range regions {
		if r.Contains(x, y) {
			return r, true
		}
	}
	return domain.Region{}, false
}
