package main

import (
	"encoding/binary"
	"io"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTick(t *testing.T) {
	samples := Tick(100*time.Millisecond, tickFrequency)
	assert.Equal(t, 4800*bytesPerSample, samples.Len())

	buf, err := io.ReadAll(samples.ToStream())
	require.NoError(t, err)
	require.Len(t, buf, samples.Len())

	var peak float64
	for idx := 0; idx < len(buf); idx += bytesPerSample {
		left := math.Float32frombits(binary.LittleEndian.Uint32(buf[idx:]))
		right := math.Float32frombits(binary.LittleEndian.Uint32(buf[idx+4:]))
		assert.Equal(t, left, right)

		peak = max(peak, math.Abs(float64(left)))
	}

	assert.Positive(t, peak)
	assert.LessOrEqual(t, peak, 0.4)
}

func TestHaptic_CachesTicks(t *testing.T) {
	haptic := &Haptic{}

	a := haptic.tick(50 * time.Millisecond)
	b := haptic.tick(50 * time.Millisecond)

	assert.Len(t, haptic.ticks, 1)
	assert.Equal(t, a, b)

	// no audio, no pulse
	assert.NotPanics(t, func() { haptic.Pulse(50 * time.Millisecond) })
}
