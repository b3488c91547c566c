// Package theme holds the presenter's colour palette.
package theme

import "image/color"

var (
	Primary      = color.NRGBA{R: 0x1E, G: 0x90, B: 0xFF, A: 0xFF} // dodger blue
	Correct      = color.NRGBA{R: 0x3C, G: 0xB3, B: 0x71, A: 0xFF} // medium sea green
	Incorrect    = color.NRGBA{R: 0xFF, G: 0x63, B: 0x47, A: 0xFF} // tomato
	Hover        = color.NRGBA{R: 0xAD, G: 0xD8, B: 0xE6, A: 0xFF} // light blue
	SelectEffect = color.NRGBA{R: 0, G: 150, B: 255, A: 0xFF}
	Background   = Gray(240)
	Gold         = color.NRGBA{R: 255, G: 215, B: 0, A: 0xFF}
	Cursor       = color.NRGBA{R: 255, G: 165, B: 0, A: 200}
	White        = color.NRGBA{R: 255, G: 255, B: 255, A: 0xFF}
)

// Gray returns an opaque gray of the given level.
func Gray(level uint8) color.NRGBA {
	return color.NRGBA{R: level, G: level, B: level, A: 0xFF}
}

// WithAlpha returns c with its alpha replaced. Colours are straight alpha, so
// the components stay as they are.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// Lerp mixes a and b by t in [0, 1].
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
