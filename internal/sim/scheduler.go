package sim

import "time"

// TimerID identifies a scheduled callback. Zero is never returned.
type TimerID uint64

type timer struct {
	id    TimerID
	at    time.Duration
	every time.Duration
	fn    func()
}

// Scheduler runs one-shot and interval callbacks against the sim clock.
// It is single-threaded: callbacks run inside Advance on the caller's goroutine,
// and may schedule or cancel other callbacks.
type Scheduler struct {
	now    time.Duration
	timers []*timer
	nextID TimerID
}

// NewScheduler returns a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the sim clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After runs fn once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	return s.add(d, 0, fn)
}

// Every runs fn each interval, starting one interval from now.
// Non-positive intervals are clamped to one millisecond.
func (s *Scheduler) Every(interval time.Duration, fn func()) TimerID {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(d, every time.Duration, fn func()) TimerID {
	s.nextID++
	s.timers = append(s.timers, &timer{id: s.nextID, at: s.now + d, every: every, fn: fn})
	return s.nextID
}

// Cancel stops a pending callback. It reports whether the timer was still pending.
func (s *Scheduler) Cancel(id TimerID) bool {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending callback.
func (s *Scheduler) CancelAll() {
	s.timers = s.timers[:0]
}

// Pending returns the number of scheduled callbacks.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Advance moves the clock forward by dt, firing due callbacks in time order.
// An interval that fell behind fires once per missed period.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	for {
		t := s.due(target)
		if t == nil {
			break
		}
		s.now = t.at
		if t.every > 0 {
			t.at += t.every
		} else {
			s.Cancel(t.id)
		}
		t.fn()
	}
	s.now = target
}

// Reset cancels everything and rewinds the clock.
func (s *Scheduler) Reset() {
	s.CancelAll()
	s.now = 0
}

func (s *Scheduler) due(target time.Duration) *timer {
	var next *timer
	for _, t := range s.timers {
		if t.at > target {
			continue
		}
		if next == nil || t.at < next.at || (t.at == next.at && t.id < next.id) {
			next = t
		}
	}
	return next
}
