// Package layout computes the interactive regions of the quiz screens from
// the current viewport size. Every call recomputes from scratch; nothing is
// cached between calls.
package layout

import (
	"math"

	"quiz-presenter/internal/domain"
)

const (
	DefaultReferenceWidth  = 800
	DefaultReferenceHeight = 600

	optionWidthRatio = 0.75
	optionHeight     = 60
	optionSpacing    = 20

	restartWidth        = 200
	restartHeight       = 40
	restartBottomOffset = 80
)

// Engine scales a fixed reference design to the viewport.
type Engine struct {
	ReferenceWidth  float64
	ReferenceHeight float64
}

// Default returns an Engine for the 800x600 reference design.
func Default() Engine {
	return Engine{ReferenceWidth: DefaultReferenceWidth, ReferenceHeight: DefaultReferenceHeight}
}

// Scale returns min(w/refW, h/refH), or 0 for a degenerate viewport.
func (e Engine) Scale(w, h float64) float64 {
	if !(w > 0 && h > 0) || e.ReferenceWidth <= 0 || e.ReferenceHeight <= 0 {
		return 0
	}
	return math.Min(w/e.ReferenceWidth, h/e.ReferenceHeight)
}

// Compute returns the option regions A, B, C (top to bottom) followed by the
// restart button. A degenerate viewport yields no regions.
func (e Engine) Compute(w, h float64) []domain.Region {
	s := e.Scale(w, h)
	if s <= 0 {
		return nil
	}

	btnW := w * optionWidthRatio
	btnH := optionHeight * s
	spacing := optionSpacing * s
	startX := (w - btnW) / 2
	startY := h/2 - btnH*1.5

	regions := make([]domain.Region, 0, len(domain.Labels)+1)
	for i := range domain.Labels {
		regions = append(regions, domain.Region{
			ID:     domain.RegionOptionA + domain.RegionID(i),
			X:      startX,
			Y:      startY + float64(i)*(btnH+spacing),
			Width:  btnW,
			Height: btnH,
		})
	}

	rw := restartWidth * s
	regions = append(regions, domain.Region{
		ID:     domain.RegionRestart,
		X:      w/2 - rw/2,
		Y:      h - restartBottomOffset*s,
		Width:  rw,
		Height: restartHeight * s,
	})
	return regions
}

// Find returns the region with the given id.
func Find(regions []domain.Region, id domain.RegionID) (domain.Region, bool) {
	for _, r := range regions {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Region{}, false
}
