// Package render turns a frame's quiz state into draw commands. It never
// touches the quiz model; callers pass a Scene built from a snapshot.
package render

import (
	"fmt"
	"math"

	"quiz-presenter/internal/animation"
	"quiz-presenter/internal/domain"
	"quiz-presenter/internal/layout"
	"quiz-presenter/internal/theme"
)

const trailLength = 5

// Point is a pointer position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Scene is everything needed to draw one frame.
type Scene struct {
	Width, Height float64
	Scale         float64
	Regions       []domain.Region
	Tick          uint64

	Phase    domain.Phase
	Index    int
	Total    int
	Score    int
	Selected domain.Label
	Question *domain.Question

	// Feedback is the outcome being flashed while awaiting the advance and
	// Flash the remaining share of the flash in [0, 1].
	Feedback domain.Feedback
	Flash    float64

	Pointer     Point
	PrevPointer Point
	HasPointer  bool
	// Hover is true when the pointer is over a region that accepts a press.
	Hover bool
}

// Frame returns the draw commands for s, back to front.
func Frame(s Scene) []domain.DrawCommand {
	cmds := []domain.DrawCommand{domain.Fill(theme.Background)}
	if s.Scale <= 0 {
		return cmds
	}

	switch s.Phase {
	case domain.PhaseQuiz, domain.PhaseAwaitingAdvance:
		cmds = append(cmds, quiz(s)...)
	case domain.PhaseResult:
		cmds = append(cmds, result(s)...)
	}

	if s.Phase == domain.PhaseAwaitingAdvance && s.Flash > 0 {
		base := theme.Correct
		if s.Feedback == domain.FeedbackIncorrect {
			base = theme.Incorrect
		}
		cmds = append(cmds, domain.Rect(0, 0, s.Width, s.Height, 0, theme.WithAlpha(base, uint8(200*s.Flash))))
	}

	if s.HasPointer {
		cmds = append(cmds, cursor(s)...)
	}
	return cmds
}

func quiz(s Scene) []domain.DrawCommand {
	if s.Question == nil {
		return nil
	}
	k := s.Scale
	q := s.Question
	cmds := []domain.DrawCommand{
		domain.Text(fmt.Sprintf("Question %d / %d:", s.Index+1, s.Total), s.Width*0.1, s.Height*0.1+12*k, 24*k, domain.AlignLeft, theme.Gray(50)),
		domain.Text(q.Prompt, s.Width*0.1, s.Height*0.15+16*k, 32*k, domain.AlignLeft, theme.Gray(50)),
	}

	for _, r := range s.Regions {
		label, ok := r.ID.Label()
		if !ok {
			continue
		}
		fill := theme.Primary
		switch {
		case label == s.Selected:
			fill = theme.Lerp(theme.Primary, theme.SelectEffect, (math.Sin(float64(s.Tick)*0.1)+1)/2)
		case s.Phase == domain.PhaseQuiz && s.HasPointer && r.Contains(s.Pointer.X, s.Pointer.Y):
			fill = theme.Hover
		}
		cmds = append(cmds,
			domain.Rect(r.X, r.Y, r.Width, r.Height, 10*k, fill),
			domain.Text(fmt.Sprintf("%s. %s", label, q.Options[label]), r.X+20*k, r.Y+r.Height/2, 20*k, domain.AlignLeft, theme.White),
		)
	}

	cmds = append(cmds, domain.Text(fmt.Sprintf("Score: %d", s.Score), s.Width*0.95, s.Height*0.05+9*k, 18*k, domain.AlignRight, theme.Gray(100)))
	return cmds
}

func result(s Scene) []domain.DrawCommand {
	k := s.Scale
	tier := domain.TierFor(s.Score, s.Total)
	cmds := []domain.DrawCommand{
		domain.Text(animation.Caption(tier, s.Score, s.Total), s.Width/2, s.Height/2-100*k, 48*k, domain.AlignCenter, theme.Gray(50)),
	}
	cmds = append(cmds, animation.Animate(tier, animation.Params{
		Tick:   s.Tick,
		Score:  s.Score,
		Total:  s.Total,
		Scale:  k,
		Width:  s.Width,
		Height: s.Height,
	})...)

	if r, ok := layout.Find(s.Regions, domain.RegionRestart); ok {
		cmds = append(cmds,
			domain.Rect(r.X, r.Y, r.Width, r.Height, 10*k, theme.Primary),
			domain.Text("Restart", r.X+r.Width/2, r.Y+r.Height/2, 20*k, domain.AlignCenter, theme.White),
		)
	}
	return cmds
}

func cursor(s Scene) []domain.DrawCommand {
	k := s.Scale
	p := s.Pointer
	if s.Hover {
		d := 30 * k
		return []domain.DrawCommand{
			domain.Ellipse(p.X, p.Y, d, d, theme.Cursor),
			domain.Ellipse(p.X, p.Y, d/2, d/2, theme.WithAlpha(theme.White, 150)),
		}
	}

	cmds := make([]domain.DrawCommand, 0, trailLength)
	for i := 0; i < trailLength; i++ {
		t := float64(i) / trailLength
		x := lerp(p.X, s.PrevPointer.X, t)
		y := lerp(p.Y, s.PrevPointer.Y, t)
		size := lerp(20*k, 5*k, t)
		alpha := lerp(255, 50, t)
		cmds = append(cmds, domain.Ellipse(x, y, size, size, theme.WithAlpha(theme.Primary, uint8(alpha))))
	}
	return cmds
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
