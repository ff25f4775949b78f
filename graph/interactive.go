package graph

import (
	"github.com/quasilyte/gmath"
)

// ClickDecorator reports clicks on the item to the listener.
type ClickDecorator struct {
	NopActions
	decorated

	Listener Listener
}

func NewClickDecorator(ctx *Context, item *Item, listener Listener) *ClickDecorator {
	d := &ClickDecorator{
		decorated: decorated{ctx: ctx, item: item},
		Listener:  listener,
	}

	item.Decorate(d)
	return d
}

func (d *ClickDecorator) OnClick(pos gmath.Vec) Result {
	item := d.decoratedItem()
	d.ctx.log().Debug("Item clicked", "item", item, "pos", pos)

	if hasListener(d.Listener) {
		d.Listener.OnItemClicked(item)
	}

	d.ctx.Refresh()
	return Handled
}

// InteractiveDecorator makes the item draggable. A select starts tracking the
// item, moves drag it along and an up drops it onto its intersecting siblings.
type InteractiveDecorator struct {
	NopActions
	decorated

	Listener Listener
}

func NewInteractiveDecorator(ctx *Context, item *Item, listener Listener) *InteractiveDecorator {
	d := &InteractiveDecorator{
		decorated: decorated{ctx: ctx, item: item},
		Listener:  listener,
	}

	item.Decorate(d)
	return d
}

func (d *InteractiveDecorator) OnSelect(pos gmath.Vec) Result {
	item := d.decoratedItem()
	if !item.Visible || !item.BoundRect().Contains(pos) {
		return Ignored
	}

	d.ctx.log().Debug("Item selected", "item", item, "pos", pos)

	d.ctx.Track(item, d.trackingLost)
	item.InflatePct = d.ctx.Settings.InflatePct

	if layer := item.Layer(); layer != nil {
		layer.BringToFront(item)
	}

	if hasListener(d.Listener) {
		d.Listener.OnItemSelected(item)
	}

	d.ctx.Vibrate(d.ctx.Settings.VibrateDuration)
	d.ctx.Refresh()

	return Handled
}

func (d *InteractiveDecorator) OnMove(from, to gmath.Vec, distanceX, distanceY float64) Result {
	item := d.decoratedItem()
	if !d.ctx.IsTracked(item) {
		return Ignored
	}

	item.Shift(-distanceX, -distanceY)

	if hasListener(d.Listener) {
		d.Listener.OnItemDragging(item, d.intersecting())
	}

	d.ctx.Refresh()
	return Handled
}

// OnUp drops the tracked item. The event is still reported as Ignored, so
// that click and fling recognition further down the chain sees the release.
func (d *InteractiveDecorator) OnUp(pos gmath.Vec) Result {
	item := d.decoratedItem()
	if !d.ctx.IsTracked(item) {
		return Ignored
	}

	d.ctx.log().Debug("Item dropped", "item", item, "pos", pos)

	item.InflatePct = 0
	intersecting := d.intersecting()

	if hasListener(d.Listener) {
		d.Listener.OnItemDropped(item, intersecting)
	}

	d.ctx.Release(item)
	d.ctx.Refresh()

	return Ignored
}

// trackingLost is called when another item got selected while this one was
// still tracked. It resets the item the same way a release does.
func (d *InteractiveDecorator) trackingLost() {
	d.item.InflatePct = 0
	d.ctx.Refresh()
}

func (d *InteractiveDecorator) intersecting() []*Item {
	item := d.item

	layer := item.Layer()
	if layer == nil {
		return nil
	}

	return layer.ItemsIntersecting(item.BoundRect(), func(other *Item) bool {
		return other != item
	})
}
