package shape

import (
	"image/color"
	"math"
	"testing"

	"quiz-presenter/internal/domain"
)

func TestEllipseStaysOnOutline(t *testing.T) {
	pts := Ellipse(100, 50, 40, 20, 16)
	if len(pts) != 16 {
		t.Fatalf("expected 16 points, got %d", len(pts))
	}
	for _, p := range pts {
		dx, dy := (p.X-100)/20, (p.Y-50)/10
		if d := dx*dx + dy*dy; math.Abs(d-1) > 1e-9 {
			t.Fatalf("point %+v off the outline (%f)", p, d)
		}
	}
}

func TestStarAlternatesRadii(t *testing.T) {
	pts := Star(0, 0, 10, 4, 5)
	if len(pts) != 10 {
		t.Fatalf("expected 10 points, got %d", len(pts))
	}
	if math.Abs(pts[0].X) > 1e-9 || math.Abs(pts[0].Y+10) > 1e-9 {
		t.Fatalf("expected first point straight up, got %+v", pts[0])
	}
	for i, p := range pts {
		want := 10.0
		if i%2 == 1 {
			want = 4
		}
		if r := math.Hypot(p.X, p.Y); math.Abs(r-want) > 1e-9 {
			t.Fatalf("point %d radius %f, want %f", i, r, want)
		}
	}
}

func TestOutline(t *testing.T) {
	c := color.NRGBA{A: 0xFF}
	if got := Outline(domain.Star(0, 0, 10, 4, 5, c)); len(got) != 10 {
		t.Fatalf("expected 10 star points, got %d", len(got))
	}
	if got := Outline(domain.Ellipse(0, 0, 4, 4, c)); len(got) != EllipseSegments {
		t.Fatalf("expected %d ellipse points, got %d", EllipseSegments, len(got))
	}
	if got := Outline(domain.Fill(c)); got != nil {
		t.Fatalf("expected no outline for fill, got %v", got)
	}
}

func TestFanClosesPolygon(t *testing.T) {
	idx := Fan(4)
	want := []uint16{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 1}
	if len(idx) != len(want) {
		t.Fatalf("expected %d indices, got %d", len(want), len(idx))
	}
	for i := range want {
		if idx[i] != want[i] {
			t.Fatalf("index %d: got %d want %d", i, idx[i], want[i])
		}
	}
}

func TestAlignX(t *testing.T) {
	if got := AlignX(domain.AlignLeft, 100, 40); got != 100 {
		t.Fatalf("left: %f", got)
	}
	if got := AlignX(domain.AlignCenter, 100, 40); got != 80 {
		t.Fatalf("center: %f", got)
	}
	if got := AlignX(domain.AlignRight, 100, 40); got != 60 {
		t.Fatalf("right: %f", got)
	}
}
