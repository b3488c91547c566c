package app_test

import (
	"testing"
	"time"

	"quiz-presenter/internal/app"
)

type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 11, 22, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestSchedulerIsDueAfterDelay(t *testing.T) {
	clock := newFakeClock()
	s := app.NewSchedulerWithClock(clock.Now)

	tok := s.Arm(app.DefaultAdvanceDelay)
	if s.IsDue(tok, clock.Now().Add(499*time.Millisecond)) {
		t.Fatalf("timer due too early")
	}
	if !s.IsDue(tok, clock.Now().Add(500*time.Millisecond)) {
		t.Fatalf("timer should be due at its deadline")
	}
	if !s.Fire(tok) {
		t.Fatalf("expected live token to fire")
	}
	if s.Fire(tok) {
		t.Fatalf("a token must fire at most once")
	}
	if _, ok := s.Pending(); ok {
		t.Fatalf("expected no pending timer after firing")
	}
}

func TestSchedulerArmSupersedesPrevious(t *testing.T) {
	clock := newFakeClock()
	s := app.NewSchedulerWithClock(clock.Now)

	first := s.Arm(time.Second)
	second := s.Arm(time.Second)
	if first == second {
		t.Fatalf("expected unique tokens")
	}

	clock.Advance(2 * time.Second)
	if s.IsDue(first, clock.Now()) {
		t.Fatalf("superseded timer reported due")
	}
	if s.Fire(first) {
		t.Fatalf("superseded timer fired")
	}
	if !s.Fire(second) {
		t.Fatalf("expected latest timer to fire")
	}
}

func TestSchedulerCancel(t *testing.T) {
	clock := newFakeClock()
	s := app.NewSchedulerWithClock(clock.Now)

	stale := s.Arm(time.Second)
	live := s.Arm(time.Second)
	s.Cancel(stale)
	if _, ok := s.Pending(); !ok {
		t.Fatalf("cancelling a stale token must not disarm the live one")
	}
	s.Cancel(live)
	if _, ok := s.Pending(); ok {
		t.Fatalf("expected live timer cancelled")
	}
	if s.Fire(live) {
		t.Fatalf("cancelled timer fired")
	}

	tok := s.Arm(time.Second)
	s.CancelAll()
	clock.Advance(time.Minute)
	if s.IsDue(tok, clock.Now()) || s.Fire(tok) {
		t.Fatalf("timer fired after CancelAll")
	}
}
