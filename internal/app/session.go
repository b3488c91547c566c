package app

import (
	"fmt"
	"log"
	"time"

	"quiz-presenter/internal/domain"
	"quiz-presenter/internal/layout"
	"quiz-presenter/internal/render"
)

// Settings tunes a Session.
type Settings struct {
	AdvanceDelay time.Duration
	Layout       layout.Engine
}

// DefaultSettings returns the 500ms advance delay and the 800x600 reference layout.
func DefaultSettings() Settings {
	return Settings{AdvanceDelay: DefaultAdvanceDelay, Layout: layout.Default()}
}

// Session owns one quiz model and everything a surface needs to drive it:
// viewport, layout, pointer, frame tick and the delayed advance. Surfaces
// must call it from a single goroutine, delivering input between frames.
type Session struct {
	quizID    string
	settings  Settings
	model     *Model
	scheduler *Scheduler
	router    Router

	width, height float64
	scale         float64
	regions       []domain.Region

	tick        uint64
	frameAt     time.Time
	pointer     render.Point
	prevPointer render.Point
	hasPointer  bool
	feedback    domain.Feedback
}

// NewSession creates a session over quiz using the wall clock.
func NewSession(quiz domain.Quiz, settings Settings) *Session {
	return NewSessionWithClock(quiz, settings, time.Now)
}

// NewSessionWithClock is test-only for deterministic advance timing.
func NewSessionWithClock(quiz domain.Quiz, settings Settings, now func() time.Time) *Session {
	if settings.AdvanceDelay <= 0 {
		settings.AdvanceDelay = DefaultAdvanceDelay
	}
	scheduler := NewSchedulerWithClock(now)
	s := &Session{
		quizID:    quiz.ID,
		settings:  settings,
		scheduler: scheduler,
		model:     NewModel(quiz.Questions, scheduler),
	}
	if len(quiz.Questions) == 0 {
		log.Printf("quiz %q: %v", quiz.ID, domain.ErrEmptyQuestionSet)
	}
	return s
}

// QuizID names the question set this session presents.
func (s *Session) QuizID() string { return s.quizID }

// Model exposes the underlying state machine.
func (s *Session) Model() *Model { return s.model }

// Scheduler exposes the advance timer.
func (s *Session) Scheduler() *Scheduler { return s.scheduler }

// Regions returns the current layout.
func (s *Session) Regions() []domain.Region { return s.regions }

// Resize recomputes the layout for a new viewport.
func (s *Session) Resize(width, height float64) {
	s.width, s.height = width, height
	s.scale = s.settings.Layout.Scale(width, height)
	s.regions = s.settings.Layout.Compute(width, height)
}

// PointerMove records the pointer position for hover and cursor effects.
func (s *Session) PointerMove(x, y float64) {
	if !s.hasPointer {
		s.prevPointer = render.Point{X: x, Y: y}
	}
	s.pointer = render.Point{X: x, Y: y}
	s.hasPointer = true
}

// PointerDown routes a press and applies it to the model.
func (s *Session) PointerDown(x, y float64) error {
	s.PointerMove(x, y)
	action, ok := s.router.Route(x, y, s.model.Phase(), s.regions)
	if !ok {
		return nil
	}

	switch action.Kind {
	case ActionSelectOrConfirm:
		answer, confirmed, err := s.model.Select(action.Label)
		if err != nil {
			return fmt.Errorf("pointer at (%.0f, %.0f): %w", x, y, err)
		}
		if confirmed {
			s.feedback = answer.Feedback
			s.scheduler.Arm(s.settings.AdvanceDelay)
		}
	case ActionReset:
		s.Reset()
	}
	return nil
}

// Reset restarts the quiz and drops any pending advance.
func (s *Session) Reset() {
	s.model.Reset()
	s.feedback = domain.FeedbackNone
}

// Step advances the frame counter and fires a due advance. now is also the
// time the next Scene is drawn at.
func (s *Session) Step(now time.Time) error {
	s.tick++
	s.frameAt = now
	adv, ok := s.scheduler.Pending()
	if ok && s.scheduler.IsDue(adv.Token, now) {
		if err := s.fire(adv.Token); err != nil {
			return err
		}
	}
	return nil
}

// fire is the deferred advance callback; stale tokens are ignored.
func (s *Session) fire(token Token) error {
	if !s.scheduler.Fire(token) {
		return nil
	}
	s.feedback = domain.FeedbackNone
	return s.model.Advance()
}

// Frame renders the current state and rolls the cursor trail forward.
func (s *Session) Frame() []domain.DrawCommand {
	cmds := render.Frame(s.Scene())
	s.prevPointer = s.pointer
	return cmds
}

// Scene builds the renderer input for the current state.
func (s *Session) Scene() render.Scene {
	snap := s.model.Snapshot()
	scene := render.Scene{
		Width:       s.width,
		Height:      s.height,
		Scale:       s.scale,
		Regions:     s.regions,
		Tick:        s.tick,
		Phase:       snap.Phase,
		Index:       snap.Index,
		Total:       snap.Total,
		Score:       snap.Score,
		Selected:    snap.Selected,
		Question:    snap.Question,
		Feedback:    s.feedback,
		Pointer:     s.pointer,
		PrevPointer: s.prevPointer,
		HasPointer:  s.hasPointer,
	}
	if s.hasPointer {
		scene.Hover = s.router.Hover(s.pointer.X, s.pointer.Y, snap.Phase, s.regions)
	}
	if adv, ok := s.scheduler.Pending(); ok && snap.Phase == domain.PhaseAwaitingAdvance {
		remaining := adv.DueAt.Sub(s.frameAt)
		scene.Flash = clamp01(float64(remaining) / float64(s.settings.AdvanceDelay))
	}
	return scene
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
