package main

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// bytesPerSample is the byte size for one sample (8 [bytes] = 2 [channels] * 4 [bytes] (32bit float)).
const bytesPerSample = 8

const sampleRate = 48000

var AudioContext = sync.OnceValue(func() *audio.Context {
	return audio.NewContext(sampleRate)
})

type Audio struct {
	players []*audio.Player

	mute bool
}

func (a *Audio) Play(samples Samples) {
	if a.mute {
		return
	}

	a.playerOf(samples.ToStream()).Play()
}

func (a *Audio) ToggleMute() bool {
	a.Cleanup()

	// toggle mute flag
	a.mute = !a.mute

	// calculate mute volume
	volume := 1.0
	if a.mute {
		volume = 0.0
	}

	// set volume on all players
	for _, p := range a.players {
		p.SetVolume(volume)
	}

	return a.mute
}

func (a *Audio) Muted() bool {
	return a.mute
}

func (a *Audio) playerOf(stream io.Reader) *audio.Player {
	// whenever we start a new player, we remove all references to
	// now dead players
	a.Cleanup()

	// create the new player
	player, _ := AudioContext().NewPlayerF32(stream)

	// and record it to handle volume updates later
	a.players = append(a.players, player)

	return player
}

func (a *Audio) Cleanup() {
	// remove players that are not playing
	a.players = slices.DeleteFunc(a.players, func(player *audio.Player) bool {
		return !player.IsPlaying()
	})
}

type Samples struct {
	buf []byte
}

// Tick synthesizes a short tone with a quickly decaying envelope, used as a
// haptic pulse on devices without a vibrator.
func Tick(duration time.Duration, frequency float64) Samples {
	count := int(duration.Seconds() * sampleRate)
	buf := make([]byte, count*bytesPerSample)

	for idx := range count {
		t := float64(idx) / sampleRate

		envelope := 1 - float64(idx)/float64(count)
		envelope *= envelope

		value := math.Float32bits(float32(0.4 * envelope * math.Sin(2*math.Pi*frequency*t)))

		// same value on both channels
		binary.LittleEndian.PutUint32(buf[idx*bytesPerSample:], value)
		binary.LittleEndian.PutUint32(buf[idx*bytesPerSample+4:], value)
	}

	return Samples{buf: buf}
}

func (m Samples) ToStream() io.ReadSeeker {
	return bytes.NewReader(m.buf)
}

func (m Samples) Len() int {
	return len(m.buf)
}
