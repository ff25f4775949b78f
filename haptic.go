package main

import (
	"time"

	"github.com/charmbracelet/log"
)

const tickFrequency = 180

// Haptic emits the short pulse signalling that an item was picked up.
type Haptic struct {
	Audio  *Audio
	Logger *log.Logger

	ticks map[time.Duration]Samples
}

func (h *Haptic) tick(duration time.Duration) Samples {
	if samples, ok := h.ticks[duration]; ok {
		return samples
	}

	if h.ticks == nil {
		h.ticks = map[time.Duration]Samples{}
	}

	samples := Tick(duration, tickFrequency)
	h.ticks[duration] = samples

	return samples
}
