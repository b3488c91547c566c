// Package terminal presents a quiz session inside a terminal using tcell.
// Pixel coordinates map onto cells, so the reference layout works unchanged.
package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"quiz-presenter/internal/app"
)

// Options configures the terminal surface.
type Options struct {
	CellWidth  float64
	CellHeight float64
	FPS        int
}

// Surface drives an app.Session from tcell events and draws its frames.
type Surface struct {
	screen  tcell.Screen
	session *app.Session
	opts    Options
	now     func() time.Time

	cols, rows int
	buttons    tcell.ButtonMask
}

func New(screen tcell.Screen, session *app.Session, opts Options) *Surface {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 10
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 20
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	return &Surface{screen: screen, session: session, opts: opts, now: time.Now}
}

// Run initialises the screen and blocks until the user quits or ctx ends.
func (s *Surface) Run(ctx context.Context) error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.screen.Fini()

	s.screen.EnableMouse(tcell.MouseMotionEvents)
	s.screen.HideCursor()
	s.resize(s.screen.Size())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(s.opts.FPS))
	defer ticker.Stop()

	s.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			if quit := s.handleEvent(ev); quit {
				return nil
			}
		case <-ticker.C:
			if err := s.session.Step(s.now()); err != nil {
				log.Printf("advance: %v", err)
			}
			s.draw()
		}
	}
}

// handleEvent applies one tcell event to the session and reports whether the
// user asked to quit.
func (s *Surface) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			s.session.Reset()
		}
	case *tcell.EventResize:
		s.resize(ev.Size())
		s.screen.Sync()
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := s.pixel(col, row)
		s.session.PointerMove(x, y)

		// Drags repeat the button mask; only the press edge counts.
		pressed := ev.Buttons()&tcell.Button1 != 0
		wasPressed := s.buttons&tcell.Button1 != 0
		s.buttons = ev.Buttons()
		if pressed && !wasPressed {
			if err := s.session.PointerDown(x, y); err != nil {
				log.Printf("pointer: %v", err)
			}
		}
	}
	return false
}

func (s *Surface) resize(cols, rows int) {
	s.cols, s.rows = cols, rows
	s.session.Resize(float64(cols)*s.opts.CellWidth, float64(rows)*s.opts.CellHeight)
}

// pixel returns the centre of a cell in session coordinates.
func (s *Surface) pixel(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.opts.CellWidth, (float64(row) + 0.5) * s.opts.CellHeight
}

func (s *Surface) draw() {
	c := newCanvas(s.cols, s.rows, s.opts.CellWidth, s.opts.CellHeight)
	c.draw(s.session.Frame())
	c.flush(s.screen)
	s.screen.Show()
}
