//go:build js && wasm

package main

import (
	"syscall/js"
	"time"
)

func ProfileStart() func() {
	return func() {}
}

// Pulse uses the vibration api of the browser and falls back to an audio
// tick where it is not available.
func (h *Haptic) Pulse(duration time.Duration) {
	if h.Audio != nil && h.Audio.Muted() {
		return
	}

	navigator := js.Global().Get("navigator")
	if navigator.Truthy() && navigator.Get("vibrate").Truthy() {
		navigator.Call("vibrate", duration.Milliseconds())
		return
	}

	if h.Audio != nil {
		h.Audio.Play(h.tick(duration))
	}
}
