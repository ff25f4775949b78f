package graph

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gmath"
)

// Dispatcher routes gestures to the action decorators of the items in its
// layers.
//
// Gestures carrying a position (down, click, select, long press) are hit
// tested against the visible items of the visible layers, topmost first. The
// first item whose decorators handle the gesture ends the dispatch.
//
// Gestures continuing a press (move, fling, up) go to the tracked item and to
// the item that received the down, even if the pointer left their bounds. A
// fling is recognized after the up, it goes to the targets of that up.
type Dispatcher struct {
	ctx    *Context
	layers []*Layer

	// item that received the last down
	owner *Item

	// targets of the last up, until the next down
	released []*Item
}

func NewDispatcher(ctx *Context) *Dispatcher {
	return &Dispatcher{ctx: ctx}
}

func (d *Dispatcher) Context() *Context {
	return d.ctx
}

// AddLayer adds the layer on top of all existing layers.
func (d *Dispatcher) AddLayer(layer *Layer) {
	d.layers = append(d.layers, layer)
}

func (d *Dispatcher) RemoveLayers(pred func(layer *Layer) bool) int {
	count := len(d.layers)
	d.layers = slices.DeleteFunc(d.layers, pred)
	return count - len(d.layers)
}

func (d *Dispatcher) Layers(pred func(layer *Layer) bool) []*Layer {
	var layers []*Layer
	for _, layer := range d.layers {
		if pred == nil || pred(layer) {
			layers = append(layers, layer)
		}
	}

	return layers
}

// ItemsAt returns the visible items containing the position, top layer and
// topmost item first.
func (d *Dispatcher) ItemsAt(pos gmath.Vec) []*Item {
	var items []*Item
	for _, layer := range slices.Backward(d.layers) {
		if layer.Visible {
			items = append(items, layer.ItemsAt(pos)...)
		}
	}

	return items
}

func (d *Dispatcher) Draw(target *ebiten.Image) {
	for _, layer := range d.layers {
		layer.Draw(target)
	}
}

func (d *Dispatcher) Down(pos gmath.Vec) Result {
	items := d.ItemsAt(pos)

	d.owner = nil
	d.released = nil
	if len(items) > 0 {
		d.owner = items[0]
	}

	return dispatchItems(items, func(action ActionDecorator) Result {
		return action.OnDown(pos)
	})
}

func (d *Dispatcher) Up(pos gmath.Vec) Result {
	items := d.pressTargets()
	d.owner = nil
	d.released = items

	return dispatchItems(items, func(action ActionDecorator) Result {
		return action.OnUp(pos)
	})
}

func (d *Dispatcher) Move(from, to gmath.Vec, distanceX, distanceY float64) Result {
	return dispatchItems(d.pressTargets(), func(action ActionDecorator) Result {
		return action.OnMove(from, to, distanceX, distanceY)
	})
}

func (d *Dispatcher) Fling(from, to gmath.Vec, velocityX, velocityY float64) Result {
	items := d.pressTargets()
	if len(items) == 0 {
		items = d.released
	}

	return dispatchItems(items, func(action ActionDecorator) Result {
		return action.OnFling(from, to, velocityX, velocityY)
	})
}

func (d *Dispatcher) Click(pos gmath.Vec) Result {
	return dispatchItems(d.ItemsAt(pos), func(action ActionDecorator) Result {
		return action.OnClick(pos)
	})
}

func (d *Dispatcher) Select(pos gmath.Vec) Result {
	return dispatchItems(d.ItemsAt(pos), func(action ActionDecorator) Result {
		return action.OnSelect(pos)
	})
}

func (d *Dispatcher) LongPress(pos gmath.Vec) Result {
	return dispatchItems(d.ItemsAt(pos), func(action ActionDecorator) Result {
		return action.OnLongPress(pos)
	})
}

// SelectItem selects the item at the center of its bounds, regardless of
// where the pointer is. This hands a running press over to another item.
func (d *Dispatcher) SelectItem(item *Item) Result {
	pos := item.BoundRect().Center()
	d.ctx.log().Debug("Select item", "item", item)

	return item.Dispatch(func(action ActionDecorator) Result {
		return action.OnSelect(pos)
	})
}

func (d *Dispatcher) pressTargets() []*Item {
	var items []*Item

	if tracked := d.ctx.Tracked(); tracked != nil {
		items = append(items, tracked)
	}

	if d.owner != nil && d.owner != d.ctx.Tracked() {
		items = append(items, d.owner)
	}

	return items
}

func dispatchItems(items []*Item, call func(ActionDecorator) Result) Result {
	for _, item := range items {
		if item.Dispatch(call) == Handled {
			return Handled
		}
	}

	return Ignored
}
