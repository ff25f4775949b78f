package graph

import (
	"time"
)

type TimerState int

const (
	TimerIdle TimerState = iota
	TimerPressing
	TimerTriggered
	TimerReleased
	TimerAbandoned
)

func (s TimerState) String() string {
	switch s {
	case TimerIdle:
		return "idle"
	case TimerPressing:
		return "pressing"
	case TimerTriggered:
		return "triggered"
	case TimerReleased:
		return "released"
	case TimerAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// LongPressTimer escalates a held press into a trigger once Timeout has
// elapsed. It does not schedule anything itself, the owner calls Advance
// regularly and the timer only evaluates once every Interval.
type LongPressTimer struct {
	Timeout  time.Duration
	Interval time.Duration

	state    TimerState
	since    time.Time
	next     time.Time
	progress float64
}

func (t *LongPressTimer) Start(now time.Time) {
	t.state = TimerPressing
	t.since = now
	t.next = now.Add(t.interval())
	t.progress = 0
}

// Advance evaluates the timer if a tick is due. While pressing, the progress
// is the elapsed fraction of the timeout and stays below one until the timer
// triggers.
func (t *LongPressTimer) Advance(now time.Time) TimerState {
	if t.state != TimerPressing || now.Before(t.next) {
		return t.state
	}

	elapsed := now.Sub(t.since)
	if elapsed >= t.Timeout {
		t.state = TimerTriggered
		t.progress = 1
		return t.state
	}

	t.progress = min(float64(elapsed)/float64(t.Timeout), 1)

	// schedule the next tick relative to this one
	t.next = now.Add(t.interval())

	return t.state
}

// Release ends a running press without triggering.
func (t *LongPressTimer) Release() {
	t.stop(TimerReleased)
}

// Abandon ends a running press that moved too far without triggering.
func (t *LongPressTimer) Abandon() {
	t.stop(TimerAbandoned)
}

func (t *LongPressTimer) stop(state TimerState) {
	if t.state != TimerPressing {
		return
	}

	t.state = state
	t.since = time.Time{}
	t.progress = 0
}

func (t *LongPressTimer) State() TimerState {
	return t.state
}

func (t *LongPressTimer) Progress() float64 {
	return t.progress
}

// Elapsed returns the time since the press started, zero if not pressing.
func (t *LongPressTimer) Elapsed(now time.Time) time.Duration {
	if t.state != TimerPressing {
		return 0
	}

	return now.Sub(t.since)
}

func (t *LongPressTimer) interval() time.Duration {
	if t.Interval <= 0 {
		return 100 * time.Millisecond
	}

	return t.Interval
}
