package app

import "time"

// DefaultAdvanceDelay is how long the answer feedback stays up before the next question.
const DefaultAdvanceDelay = 500 * time.Millisecond

// Token identifies one armed timer.
type Token uint64

// ScheduledAdvance is the single outstanding delayed advance.
type ScheduledAdvance struct {
	DueAt time.Time
	Token Token
}

// Scheduler is a single-slot timer. Arming replaces any outstanding timer, and
// a token that is no longer live can never fire.
type Scheduler struct {
	now  func() time.Time
	last Token

	pending ScheduledAdvance
	armed   bool
}

// NewScheduler returns a scheduler on the wall clock.
func NewScheduler() *Scheduler {
	return NewSchedulerWithClock(time.Now)
}

// NewSchedulerWithClock is used by tests for deterministic due times.
func NewSchedulerWithClock(now func() time.Time) *Scheduler {
	return &Scheduler{now: now}
}

// Arm cancels any outstanding timer and schedules a new one delay from now.
func (s *Scheduler) Arm(delay time.Duration) Token {
	s.last++
	s.pending = ScheduledAdvance{DueAt: s.now().Add(delay), Token: s.last}
	s.armed = true
	return s.last
}

// Cancel disarms the timer if token is still live.
func (s *Scheduler) Cancel(token Token) {
	if s.armed && s.pending.Token == token {
		s.armed = false
	}
}

// CancelAll disarms whatever timer is outstanding.
func (s *Scheduler) CancelAll() {
	s.armed = false
}

// IsDue reports whether token is live and its due time has passed.
func (s *Scheduler) IsDue(token Token, now time.Time) bool {
	return s.armed && s.pending.Token == token && !now.Before(s.pending.DueAt)
}

// Pending returns the outstanding timer.
func (s *Scheduler) Pending() (ScheduledAdvance, bool) {
	return s.pending, s.armed
}

// Fire claims token. It returns true exactly once for a live token and false
// for tokens that were cancelled or superseded.
func (s *Scheduler) Fire(token Token) bool {
	if !s.armed || s.pending.Token != token {
		return false
	}
	s.armed = false
	return true
}
