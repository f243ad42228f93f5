package loop

import "time"

// Scheduler gates simulation ticks to a fixed interval, independent of how
// often the host loop polls.
type Scheduler struct {
	interval time.Duration
	last     time.Time
}

// NewScheduler returns a scheduler whose first tick is due one interval
// after start.
func NewScheduler(interval time.Duration, start time.Time) *Scheduler {
	return &Scheduler{interval: interval, last: start}
}

// ShouldTick reports whether a tick is due at now. Ticks only fire while the
// round is running; a fired tick moves the reference time to now.
func (s *Scheduler) ShouldTick(now time.Time, running bool) bool {
	if !running || now.Sub(s.last) < s.interval {
		return false
	}
	s.last = now
	return true
}

// Reset restarts the interval from now.
func (s *Scheduler) Reset(now time.Time) {
	s.last = now
}

// Interval returns the tick interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}
