//go:build !(js && wasm)

package main

import (
	"time"

	"github.com/pkg/profile"
)

func ProfileStart() func() {
	return profile.Start(profile.CPUProfile).Stop
}

// Pulse plays a short audio tick, desktops have no vibrator.
func (h *Haptic) Pulse(duration time.Duration) {
	if h.Audio == nil || h.Audio.Muted() {
		return
	}

	h.Logger.Debug("Haptic pulse", "duration", duration)
	h.Audio.Play(h.tick(duration))
}
