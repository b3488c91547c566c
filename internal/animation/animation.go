// Package animation draws the result-screen animation for each performance
// tier. Every animation is a pure function of its Params.
package animation

import (
	"fmt"
	"math"
	"math/rand/v2"

	"quiz-presenter/internal/domain"
	"quiz-presenter/internal/theme"
)

const (
	starCount   = 5
	bubbleCount = 10
)

// Params is everything an animation may depend on.
type Params struct {
	Tick   uint64
	Score  int
	Total  int
	Scale  float64
	Width  float64
	Height float64
}

// Func renders one frame of an animation.
type Func func(Params) []domain.DrawCommand

var animations = map[domain.Tier]Func{
	domain.TierPerfect:   cheering,
	domain.TierPass:      drift,
	domain.TierNeedsWork: pulse,
	domain.TierEmpty:     none,
}

// Animate renders the animation for tier.
func Animate(tier domain.Tier, p Params) []domain.DrawCommand {
	fn, ok := animations[tier]
	if !ok {
		return nil
	}
	return fn(p)
}

// Caption is the headline shown above the animation.
func Caption(tier domain.Tier, score, total int) string {
	switch tier {
	case domain.TierPerfect:
		return "Perfect score! Amazing!"
	case domain.TierPass:
		return fmt.Sprintf("Nice work! Score: %d / %d", score, total)
	case domain.TierNeedsWork:
		return fmt.Sprintf("Needs more practice! Score: %d / %d", score, total)
	default:
		return "No questions loaded!"
	}
}

// cheering scatters gold stars over the top half of the screen.
func cheering(p Params) []domain.DrawCommand {
	cmds := make([]domain.DrawCommand, 0, starCount)
	for i := 0; i < starCount; i++ {
		// Seeded per tick and particle so a frame can be redrawn identically.
		rng := rand.New(rand.NewPCG(p.Tick, uint64(i)))
		x := rng.Float64() * p.Width
		y := rng.Float64() * p.Height / 2
		size := (10 + rng.Float64()*20) * p.Scale
		alpha := remap(math.Sin(float64(p.Tick)*0.1+float64(i)), -1, 1, 100, 255)
		cmds = append(cmds, domain.Star(x, y, size, size/2, 5, theme.WithAlpha(theme.Gold, uint8(alpha))))
	}
	return cmds
}

// drift floats bubbles upward, wrapping at the top.
func drift(p Params) []domain.DrawCommand {
	cmds := make([]domain.DrawCommand, 0, bubbleCount)
	size := 20 * p.Scale
	c := theme.WithAlpha(theme.Correct, 150)
	for i := 0; i < bubbleCount; i++ {
		phase := float64(p.Tick)*0.05 + float64(i)
		x := p.Width/2 + math.Sin(phase)*100*p.Scale
		_, frac := math.Modf(float64(p.Tick)*0.01 + float64(i)*0.1)
		y := p.Height * (1 - frac)
		cmds = append(cmds, domain.Ellipse(x, y, size, size, c))
	}
	return cmds
}

// pulse beats a single heart-coloured circle with an encouragement caption.
func pulse(p Params) []domain.DrawCommand {
	grow := remap(math.Sin(float64(p.Tick)*0.1), -1, 1, 0, 50*p.Scale)
	d := 150*p.Scale + grow
	cy := p.Height/2 + 100*p.Scale
	return []domain.DrawCommand{
		domain.Ellipse(p.Width/2, cy, d, d, theme.WithAlpha(theme.Incorrect, 180)),
		domain.Text("Keep going!", p.Width/2, cy, 24*p.Scale, domain.AlignCenter, theme.White),
	}
}

func none(Params) []domain.DrawCommand {
	return nil
}

func remap(v, inLo, inHi, outLo, outHi float64) float64 {
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}
