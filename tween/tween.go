package tween

import (
	"math"
	"slices"
	"time"

	"github.com/quasilyte/gmath"
)

// Tweens runs a set of tweens. Tweens added with a key replace a running
// tween with the same key, so that an animation of a value can be restarted
// from its current state.
type Tweens struct {
	tweens []keyed
}

type keyed struct {
	key   string
	tween Tween
}

func (t *Tweens) Add(tween Tween) {
	t.Set("", tween)
}

// Set adds a tween under a key, dropping any tween running with that key.
// An empty key never replaces anything.
func (t *Tweens) Set(key string, tween Tween) {
	if key != "" {
		t.Cancel(key)
	}

	if tween.Update(0) {
		return
	}

	t.tweens = append(t.tweens, keyed{key: key, tween: tween})
}

// Cancel drops the tweens running with the given key without finishing them.
func (t *Tweens) Cancel(key string) {
	t.tweens = slices.DeleteFunc(t.tweens, func(k keyed) bool {
		return k.key == key
	})
}

// Update advances all tweens and returns the number of tweens still running.
func (t *Tweens) Update(dt time.Duration) int {
	// tweens may add new tweens when they finish
	running := slices.Clone(t.tweens)

	var done []Tween
	for _, k := range running {
		if k.tween.Update(dt) {
			done = append(done, k.tween)
		}
	}

	t.tweens = slices.DeleteFunc(t.tweens, func(k keyed) bool {
		return slices.Contains(done, k.tween)
	})

	return len(t.tweens)
}

func (t *Tweens) Len() int {
	return len(t.tweens)
}

type Target func(f float64, elapsed, duration time.Duration)

type Tween interface {
	Update(dt time.Duration) (done bool)
}

type Simple struct {
	Duration time.Duration
	Target   Target
	Ease     func(t float64) float64

	// called once after the last update
	Done func()

	elapsed time.Duration
}

func (t *Simple) Update(dt time.Duration) bool {
	if t.Duration <= 0 {
		t.finish()
		return true
	}

	t.elapsed += dt

	f := min(1, float64(t.elapsed)/float64(t.Duration))

	if t.Ease != nil {
		f = t.Ease(f)
	}

	if t.Target != nil {
		t.Target(f, t.elapsed, t.Duration)
	}

	if t.elapsed < t.Duration {
		return false
	}

	t.finish()
	return true
}

func (t *Simple) finish() {
	if t.Done != nil {
		t.Done()
		t.Done = nil
	}
}

func Sequence(tweens ...Tween) Tween {
	return &tweensSequence{tweens: tweens}
}

type tweensSequence struct {
	tweens []Tween
}

func (s *tweensSequence) Update(dt time.Duration) bool {
	if len(s.tweens) > 0 {
		if done := s.tweens[0].Update(dt); done {
			s.tweens = s.tweens[1:]
		}
	}

	return len(s.tweens) == 0
}

type tweensConcurrent struct {
	tweens []Tween
}

func (t *tweensConcurrent) Update(dt time.Duration) (done bool) {
	t.tweens = slices.DeleteFunc(t.tweens, func(tween Tween) bool {
		return tween.Update(dt)
	})

	return len(t.tweens) == 0
}

func Concurrent(tweens ...Tween) Tween {
	return &tweensConcurrent{tweens: tweens}
}

func LerpValue(target *float64, from, to float64) Target {
	return func(f float64, _, _ time.Duration) {
		*target = gmath.Lerp(from, to, f)
	}
}

// LerpAlpha animates an alpha channel, e.g. the background of a layer.
func LerpAlpha(target func(alpha uint8), from, to uint8) Target {
	return func(f float64, _, _ time.Duration) {
		alpha := gmath.Lerp(float64(from), float64(to), f)
		target(uint8(math.Round(min(max(alpha, 0), 255))))
	}
}

func Delay(delay time.Duration, next Tween) Tween {
	first := &Simple{Duration: delay}
	return Sequence(first, next)
}
