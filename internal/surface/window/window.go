// Package window presents a quiz session in a desktop window using Ebiten.
package window

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"quiz-presenter/internal/app"
	"quiz-presenter/internal/domain"
	"quiz-presenter/internal/surface/shape"
)

// Options configures the window.
type Options struct {
	Width  int
	Height int
	Title  string
	Debug  bool
}

// Game adapts an app.Session to ebiten.Game.
type Game struct {
	session *app.Session
	opts    Options
	now     func() time.Time

	width, height int
	white         *ebiten.Image
}

func New(session *app.Session, opts Options) *Game {
	return &Game{session: session, opts: opts, now: time.Now}
}

// Run opens the window and blocks until it is closed.
func Run(session *app.Session, opts Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(New(session, opts)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}

	x, y := ebiten.CursorPosition()
	g.session.PointerMove(float64(x), float64(y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if err := g.session.PointerDown(float64(x), float64(y)); err != nil {
			log.Printf("pointer: %v", err)
		}
	}

	if err := g.session.Step(g.now()); err != nil {
		log.Printf("advance: %v", err)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, cmd := range g.session.Frame() {
		g.draw(screen, cmd)
	}
	if g.opts.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 4, 4)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func (g *Game) draw(screen *ebiten.Image, cmd domain.DrawCommand) {
	switch cmd.Kind {
	case domain.DrawFill:
		screen.Fill(cmd.Color)
	case domain.DrawRect:
		vector.DrawFilledRect(screen, float32(cmd.X), float32(cmd.Y), float32(cmd.W), float32(cmd.H), cmd.Color, true)
	case domain.DrawEllipse:
		if cmd.W == cmd.H {
			vector.DrawFilledCircle(screen, float32(cmd.X), float32(cmd.Y), float32(cmd.W/2), cmd.Color, true)
			return
		}
		g.fillPolygon(screen, cmd.X, cmd.Y, shape.Outline(cmd), cmd.Color)
	case domain.DrawStar:
		g.fillPolygon(screen, cmd.X, cmd.Y, shape.Outline(cmd), cmd.Color)
	case domain.DrawText:
		drawText(screen, cmd)
	}
}

// fillPolygon fans triangles out from (cx, cy) over the outline.
func (g *Game) fillPolygon(screen *ebiten.Image, cx, cy float64, outline []shape.Point, c color.NRGBA) {
	if len(outline) < 3 {
		return
	}
	if g.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		g.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	r, gr, b, a := float32(c.R)/0xFF, float32(c.G)/0xFF, float32(c.B)/0xFF, float32(c.A)/0xFF
	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: gr, ColorB: b, ColorA: a,
		}
	}
	vs := make([]ebiten.Vertex, 0, len(outline)+1)
	vs = append(vs, vertex(cx, cy))
	for _, p := range outline {
		vs = append(vs, vertex(p.X, p.Y))
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true, ColorScaleMode: ebiten.ColorScaleModeStraightAlpha}
	screen.DrawTriangles(vs, shape.Fan(len(outline)), g.white, op)
}

// drawText scales the 7x13 bitmap face to the requested size and centres it
// vertically on cmd.Y.
func drawText(screen *ebiten.Image, cmd domain.DrawCommand) {
	face := basicfont.Face7x13
	k := cmd.Size / float64(face.Height)
	if k <= 0 {
		k = 1
	}
	width := float64(font.MeasureString(face, cmd.Text).Ceil()) * k
	baseline := cmd.Y + float64(face.Ascent-face.Descent)/2*k

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(shape.AlignX(cmd.Align, cmd.X, width), baseline)
	op.ColorScale.ScaleWithColor(cmd.Color)
	text.DrawWithOptions(screen, cmd.Text, face, op)
}
