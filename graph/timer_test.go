package graph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongPressTimer_TriggersWithinOneInterval(t *testing.T) {
	const timeout = 1050 * time.Millisecond
	const interval = 100 * time.Millisecond

	timer := LongPressTimer{Timeout: timeout, Interval: interval}

	start := time.Unix(1000, 0)
	timer.Start(start)

	var triggeredAt time.Duration
	for k := 1; k <= 20; k++ {
		elapsed := time.Duration(k) * interval

		state := timer.Advance(start.Add(elapsed))
		if state == TimerTriggered {
			triggeredAt = elapsed
			break
		}

		require.Equal(t, TimerPressing, state)

		expected := float64(elapsed) / float64(timeout)
		assert.InDelta(t, expected, timer.Progress(), 1e-9)
		assert.Less(t, timer.Progress(), 1.0)
	}

	assert.GreaterOrEqual(t, triggeredAt, timeout)
	assert.Less(t, triggeredAt, timeout+interval)
	assert.Equal(t, TimerTriggered, timer.State())
}

func TestLongPressTimer_OnlyTicksEveryInterval(t *testing.T) {
	timer := LongPressTimer{Timeout: time.Second, Interval: 100 * time.Millisecond}

	start := time.Unix(1000, 0)
	timer.Start(start)

	// not yet due
	timer.Advance(start.Add(50 * time.Millisecond))
	assert.Zero(t, timer.Progress())

	timer.Advance(start.Add(100 * time.Millisecond))
	assert.InDelta(t, 0.1, timer.Progress(), 1e-9)

	// next tick is due 100ms after the previous one
	timer.Advance(start.Add(150 * time.Millisecond))
	assert.InDelta(t, 0.1, timer.Progress(), 1e-9)

	timer.Advance(start.Add(200 * time.Millisecond))
	assert.InDelta(t, 0.2, timer.Progress(), 1e-9)
}

func TestLongPressTimer_LateAdvanceTriggers(t *testing.T) {
	timer := LongPressTimer{Timeout: time.Second, Interval: 100 * time.Millisecond}

	start := time.Unix(1000, 0)
	timer.Start(start)

	assert.Equal(t, TimerTriggered, timer.Advance(start.Add(5*time.Second)))
}

func TestLongPressTimer_ReleaseAndAbandon(t *testing.T) {
	start := time.Unix(1000, 0)

	released := LongPressTimer{Timeout: time.Second, Interval: 100 * time.Millisecond}
	released.Start(start)
	released.Advance(start.Add(500 * time.Millisecond))
	released.Release()

	assert.Equal(t, TimerReleased, released.State())
	assert.Zero(t, released.Progress())
	assert.Equal(t, TimerReleased, released.Advance(start.Add(10*time.Second)))

	abandoned := LongPressTimer{Timeout: time.Second, Interval: 100 * time.Millisecond}
	abandoned.Start(start)
	abandoned.Abandon()

	assert.Equal(t, TimerAbandoned, abandoned.State())
	assert.Equal(t, TimerAbandoned, abandoned.Advance(start.Add(10*time.Second)))
	assert.Zero(t, abandoned.Elapsed(start.Add(time.Second)))

	// stopping an idle timer does nothing
	var idle LongPressTimer
	idle.Release()
	assert.Equal(t, TimerIdle, idle.State())
}

func TestLongPressTimer_Restart(t *testing.T) {
	timer := LongPressTimer{Timeout: time.Second, Interval: 100 * time.Millisecond}

	start := time.Unix(1000, 0)
	timer.Start(start)
	timer.Advance(start.Add(2 * time.Second))
	require.Equal(t, TimerTriggered, timer.State())

	restart := start.Add(3 * time.Second)
	timer.Start(restart)
	assert.Equal(t, TimerPressing, timer.State())
	assert.Zero(t, timer.Progress())
	assert.Equal(t, 300*time.Millisecond, timer.Elapsed(restart.Add(300*time.Millisecond)))
}

func TestTimerState_String(t *testing.T) {
	assert.Equal(t, "pressing", TimerPressing.String())
	assert.Equal(t, "triggered", TimerTriggered.String())
	assert.Equal(t, "unknown", TimerState(42).String())
}
