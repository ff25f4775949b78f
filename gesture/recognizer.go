package gesture

import (
	"time"

	"github.com/quasilyte/gmath"
)

type Kind int

const (
	Down Kind = iota
	Up
	Move
	Fling
	Click
	Select
	LongPress
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Up:
		return "up"
	case Move:
		return "move"
	case Fling:
		return "fling"
	case Click:
		return "click"
	case Select:
		return "select"
	case LongPress:
		return "longPress"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind Kind

	// Pos is the position of the event. For moves and flings it is the
	// position the pointer moved to.
	Pos gmath.Vec

	// From is the previous pointer position of a move or fling.
	From gmath.Vec

	// Delta of a move, measured as From - Pos.
	Delta gmath.Vec

	// Velocity of a fling in units per second.
	Velocity gmath.Vec
}

type Settings struct {
	// movement within this distance of the press position is not a move
	TouchSlop float64

	// a press held still for this long selects
	SelectDelay time.Duration

	// a press held still for this long is a long press
	LongPressDelay time.Duration

	// release velocity in units per second needed for a fling
	MinFlingVelocity float64
}

func DefaultSettings() Settings {
	return Settings{
		TouchSlop:        8,
		SelectDelay:      300 * time.Millisecond,
		LongPressDelay:   600 * time.Millisecond,
		MinFlingVelocity: 800,
	}
}

// a move older than this at release time does not count for a fling
const flingMaxPause = 100 * time.Millisecond

// Recognizer turns pointer samples into gestures. It is fed once per frame
// with the pointer position and whether the pointer is pressed.
type Recognizer struct {
	Settings Settings

	pressed bool

	start     gmath.Vec
	startTime time.Time

	last     gmath.Vec
	lastTime time.Time

	leftSlop    bool
	moved       bool
	selected    bool
	longPressed bool

	velocity gmath.Vec

	events []Event
}

func NewRecognizer(settings Settings) *Recognizer {
	return &Recognizer{Settings: settings}
}

// Pressed reports whether a press is in progress.
func (r *Recognizer) Pressed() bool {
	return r.pressed
}

// Update processes the next pointer sample. The returned slice is only valid
// until the next call to Update.
func (r *Recognizer) Update(now time.Time, pos gmath.Vec, pressed bool) []Event {
	r.events = r.events[:0]

	switch {
	case pressed && !r.pressed:
		r.press(now, pos)

	case pressed && r.pressed:
		r.hold(now, pos)

	case !pressed && r.pressed:
		r.release(now, pos)
	}

	return r.events
}

// Cancel forgets the current press without emitting any further events.
func (r *Recognizer) Cancel() {
	r.pressed = false
}

func (r *Recognizer) press(now time.Time, pos gmath.Vec) {
	r.pressed = true
	r.start, r.startTime = pos, now
	r.last, r.lastTime = pos, now
	r.leftSlop = false
	r.moved = false
	r.selected = false
	r.longPressed = false
	r.velocity = gmath.Vec{}

	r.emit(Event{Kind: Down, Pos: pos})
}

func (r *Recognizer) hold(now time.Time, pos gmath.Vec) {
	if pos != r.last {
		if !r.leftSlop && pos.DistanceTo(r.start) > r.Settings.TouchSlop {
			r.leftSlop = true
		}

		// movement inside the slop is noise until the item got selected
		if r.leftSlop || r.selected {
			r.move(now, pos)
		}
	}

	held := now.Sub(r.startTime)

	if !r.moved && !r.selected && held >= r.Settings.SelectDelay {
		r.selected = true
		r.emit(Event{Kind: Select, Pos: r.start})
	}

	if !r.leftSlop && !r.longPressed && held >= r.Settings.LongPressDelay {
		r.longPressed = true
		r.emit(Event{Kind: LongPress, Pos: r.start})
	}
}

func (r *Recognizer) move(now time.Time, pos gmath.Vec) {
	from := r.last

	if dt := now.Sub(r.lastTime).Seconds(); dt > 0 {
		r.velocity = pos.Sub(from).Mulf(1 / dt)
	}

	r.moved = true
	r.last, r.lastTime = pos, now

	r.emit(Event{Kind: Move, Pos: pos, From: from, Delta: from.Sub(pos)})
}

func (r *Recognizer) release(now time.Time, pos gmath.Vec) {
	if pos != r.last && (r.leftSlop || r.selected) {
		r.move(now, pos)
	}

	r.pressed = false
	r.emit(Event{Kind: Up, Pos: pos})

	switch {
	case !r.moved && !r.selected:
		r.emit(Event{Kind: Click, Pos: r.start})

	case r.moved && now.Sub(r.lastTime) <= flingMaxPause && r.velocity.Len() >= r.Settings.MinFlingVelocity:
		r.emit(Event{Kind: Fling, Pos: pos, From: r.start, Velocity: r.velocity})
	}
}

func (r *Recognizer) emit(event Event) {
	r.events = append(r.events, event)
}
