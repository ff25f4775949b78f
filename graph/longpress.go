package graph

import (
	"math"
	"time"

	"github.com/quasilyte/gmath"
)

// LongPressDecorator escalates a sustained press on the item into a trigger.
// While the press is held, the progress item is visible and shows the elapsed
// fraction of the timeout. Moving further than AbandonOffset or releasing the
// press hides it again without triggering.
//
// The decorator schedules itself on the context when a press starts and
// keeps running only as long as the progress item stays visible.
type LongPressDecorator struct {
	NopActions
	decorated

	Listener Listener

	// Progress visualizes the running press. Its shape is updated if it is
	// a *ProgressBar.
	Progress *Item

	// distance along one axis that abandons the press
	AbandonOffset float64

	Timer LongPressTimer

	// drag distance accumulated since the press started
	dragged gmath.Vec
}

func NewLongPressDecorator(ctx *Context, item *Item, progress *Item, abandonOffset float64, listener Listener) *LongPressDecorator {
	if progress == nil {
		panic("graph: long press decorator requires a progress item")
	}

	d := &LongPressDecorator{
		decorated:     decorated{ctx: ctx, item: item},
		Listener:      listener,
		Progress:      progress,
		AbandonOffset: abandonOffset,
		Timer: LongPressTimer{
			Timeout:  ctx.Settings.LongPressTimeout,
			Interval: ctx.Settings.LongPressInterval,
		},
	}

	progress.Visible = false

	item.Decorate(d)
	return d
}

// OnSelect starts the press. The select is passed on to the following
// decorators, so the item can still be dragged. Hidden items and positions
// outside of the bounds start nothing.
func (d *LongPressDecorator) OnSelect(pos gmath.Vec) Result {
	item := d.decoratedItem()
	if !item.Visible || !item.BoundRect().Contains(pos) {
		return Ignored
	}

	d.ctx.log().Debug("Long press started", "item", item, "pos", pos)

	d.dragged = gmath.Vec{}
	d.Progress.Visible = true
	d.setProgress(0)

	d.Timer.Start(d.ctx.now())
	d.ctx.Schedule(d)

	return Ignored
}

func (d *LongPressDecorator) OnMove(from, to gmath.Vec, distanceX, distanceY float64) Result {
	d.decoratedItem()

	if d.Timer.State() != TimerPressing {
		return Ignored
	}

	d.dragged = d.dragged.Add(gmath.Vec{X: -distanceX, Y: -distanceY})

	if math.Abs(d.dragged.X) > d.AbandonOffset || math.Abs(d.dragged.Y) > d.AbandonOffset {
		d.ctx.log().Debug("Long press abandoned", "item", d.item, "offset", d.dragged)
		d.Timer.Abandon()
		d.reset()
	}

	return Ignored
}

func (d *LongPressDecorator) OnUp(pos gmath.Vec) Result {
	d.decoratedItem()

	if d.Timer.State() == TimerPressing {
		d.ctx.log().Debug("Long press released", "item", d.item)
		d.Timer.Release()
	}

	d.reset()
	return Ignored
}

// Advance implements Task.
func (d *LongPressDecorator) Advance(now time.Time) TaskStatus {
	if !d.Progress.Visible {
		return TaskDone
	}

	switch d.Timer.Advance(now) {
	case TimerPressing:
		d.setProgress(d.Timer.Progress())
		d.ctx.Refresh()
		return TaskRunning

	case TimerTriggered:
		d.ctx.log().Debug("Long press triggered", "item", d.item)

		d.Progress.Visible = false
		if hasListener(d.Listener) {
			d.Listener.OnItemTriggered(d.item)
		}

		d.ctx.Refresh()
		return TaskDone

	default:
		d.reset()
		return TaskDone
	}
}

func (d *LongPressDecorator) reset() {
	d.dragged = gmath.Vec{}
	d.Progress.Visible = false
	d.setProgress(0)
	d.ctx.Refresh()
}

func (d *LongPressDecorator) setProgress(progress float64) {
	if bar, ok := d.Progress.Shape.(*ProgressBar); ok {
		bar.Progress = progress
	}
}
