package domain

import "image/color"

// DrawKind selects the primitive a DrawCommand describes.
type DrawKind string

const (
	DrawFill    DrawKind = "fill"
	DrawRect    DrawKind = "rect"
	DrawEllipse DrawKind = "ellipse"
	DrawStar    DrawKind = "star"
	DrawText    DrawKind = "text"
)

// Align is the horizontal anchor of a text command.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// DrawCommand is one vector-graphics call for a drawing surface.
//
// Rect: X, Y is the top-left corner, Radius the corner radius.
// Ellipse and Star: X, Y is the centre. Ellipse uses W, H as diameters; Star
// uses Radius (outer), Inner and Points.
// Text: X, Y is the anchor, vertically centred, Size the font size.
// Color carries straight (non-premultiplied) alpha.
type DrawCommand struct {
	Kind   DrawKind    `json:"kind"`
	X      float64     `json:"x,omitempty"`
	Y      float64     `json:"y,omitempty"`
	W      float64     `json:"w,omitempty"`
	H      float64     `json:"h,omitempty"`
	Radius float64     `json:"r,omitempty"`
	Inner  float64     `json:"inner,omitempty"`
	Points int         `json:"points,omitempty"`
	Color  color.NRGBA `json:"color"`
	Text   string      `json:"text,omitempty"`
	Size   float64     `json:"size,omitempty"`
	Align  Align       `json:"align,omitempty"`
}

func Fill(c color.NRGBA) DrawCommand {
	return DrawCommand{Kind: DrawFill, Color: c}
}

func Rect(x, y, w, h, radius float64, c color.NRGBA) DrawCommand {
	return DrawCommand{Kind: DrawRect, X: x, Y: y, W: w, H: h, Radius: radius, Color: c}
}

func Ellipse(cx, cy, w, h float64, c color.NRGBA) DrawCommand {
	return DrawCommand{Kind: DrawEllipse, X: cx, Y: cy, W: w, H: h, Color: c}
}

func Star(cx, cy, outer, inner float64, points int, c color.NRGBA) DrawCommand {
	return DrawCommand{Kind: DrawStar, X: cx, Y: cy, Radius: outer, Inner: inner, Points: points, Color: c}
}

func Text(s string, x, y, size float64, align Align, c color.NRGBA) DrawCommand {
	return DrawCommand{Kind: DrawText, X: x, Y: y, Text: s, Size: size, Align: align, Color: c}
}
