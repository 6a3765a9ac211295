package core

import "time"

// Interval reports when a periodic action such as automatic regeneration is
// due. A zero or negative period disables it.
type Interval struct {
	period time.Duration
	next   time.Time
}

// NewInterval constructs an Interval firing every period.
func NewInterval(period time.Duration) *Interval {
	return &Interval{period: period}
}

// SetPeriod changes the period and restarts the countdown on the next Due call.
func (i *Interval) SetPeriod(period time.Duration) {
	i.period = period
	i.next = time.Time{}
}

// Period returns the configured period.
func (i *Interval) Period() time.Duration { return i.period }

// Due reports whether the action should run at now. The first call only arms
// the timer.
func (i *Interval) Due(now time.Time) bool {
	if i.period <= 0 {
		return false
	}
	if i.next.IsZero() {
		i.next = now.Add(i.period)
		return false
	}
	if now.Before(i.next) {
		return false
	}
	// Skip missed periods instead of firing repeatedly after a stall.
	for !now.Before(i.next) {
		i.next = i.next.Add(i.period)
	}
	return true
}
