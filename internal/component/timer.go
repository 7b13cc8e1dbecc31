package component

import (
	"math"
	"time"
)

// Seconds converts a tick delta in seconds to a Duration, rounding to the
// nearest nanosecond so that e.g. ten 0.1 s ticks add up to exactly 1 s.
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// RepeatingTimer counts down from Period and wraps around on expiry.
type RepeatingTimer struct {
	Period    time.Duration
	Remaining time.Duration
	finished  int // Expiries crossed by the last Tick
}

// NewRepeatingTimer starts a full period.
func NewRepeatingTimer(period time.Duration) *RepeatingTimer {
	return &RepeatingTimer{Period: period, Remaining: period}
}

// Tick advances the timer and returns how many times it crossed zero. The
// remainder carries over, so the phase never drifts.
func (t *RepeatingTimer) Tick(deltaTime float64) int {
	t.finished = 0
	if t.Period <= 0 {
		return 0
	}
	t.Remaining -= Seconds(deltaTime)
	if t.Remaining <= 0 {
		t.finished = int(-t.Remaining/t.Period) + 1
		t.Remaining += time.Duration(t.finished) * t.Period
	}
	return t.finished
}

// JustFinished reports whether the last Tick crossed zero.
func (t *RepeatingTimer) JustFinished() bool {
	return t.finished > 0
}

// TimesFinished is the expiry count of the last Tick.
func (t *RepeatingTimer) TimesFinished() int {
	return t.finished
}

// Lifetime despawns its entity once Remaining runs out.
type Lifetime struct {
	Remaining time.Duration
}

// NewLifetime starts a one-shot countdown.
func NewLifetime(d time.Duration) *Lifetime {
	return &Lifetime{Remaining: d}
}

// Tick advances the countdown and reports whether it has expired.
func (l *Lifetime) Tick(deltaTime float64) bool {
	l.Remaining -= Seconds(deltaTime)
	return l.Remaining <= 0
}
