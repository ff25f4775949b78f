package graph

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gmath"
)

// Result of a gesture callback. Handled stops the event from reaching the
// remaining decorators of the same item.
type Result int

const (
	Ignored Result = iota
	Handled
)

func (r Result) String() string {
	if r == Handled {
		return "handled"
	}

	return "ignored"
}

// PaintDecorator augments the drawing of an item. PaintBefore runs before the
// shape of the item is drawn, PaintAfter afterwards.
type PaintDecorator interface {
	PaintBefore(target *ebiten.Image)
	PaintAfter(target *ebiten.Image)
}

// ActionDecorator receives the gestures dispatched to an item.
type ActionDecorator interface {
	OnDown(pos gmath.Vec) Result
	OnUp(pos gmath.Vec) Result

	// OnMove reports a drag from one position to another. The distance is
	// measured as from - to, the item follows the pointer when shifted by
	// the negative distance.
	OnMove(from, to gmath.Vec, distanceX, distanceY float64) Result

	OnFling(from, to gmath.Vec, velocityX, velocityY float64) Result
	OnClick(pos gmath.Vec) Result
	OnSelect(pos gmath.Vec) Result
	OnLongPress(pos gmath.Vec) Result
}

// NopPaint can be embedded to implement only one of the paint hooks.
type NopPaint struct{}

func (NopPaint) PaintBefore(*ebiten.Image) {}
func (NopPaint) PaintAfter(*ebiten.Image)  {}

// NopActions can be embedded to implement only some of the gesture callbacks.
type NopActions struct{}

func (NopActions) OnDown(gmath.Vec) Result                              { return Ignored }
func (NopActions) OnUp(gmath.Vec) Result                                { return Ignored }
func (NopActions) OnMove(gmath.Vec, gmath.Vec, float64, float64) Result  { return Ignored }
func (NopActions) OnFling(gmath.Vec, gmath.Vec, float64, float64) Result { return Ignored }
func (NopActions) OnClick(gmath.Vec) Result                             { return Ignored }
func (NopActions) OnSelect(gmath.Vec) Result                            { return Ignored }
func (NopActions) OnLongPress(gmath.Vec) Result                         { return Ignored }

// decorated is the common state of the decorators shipped with this package.
type decorated struct {
	ctx  *Context
	item *Item
}

func (d *decorated) decoratedItem() *Item {
	if d.item == nil || d.ctx == nil {
		panic("graph: decorator is not attached to an item")
	}

	return d.item
}

// Item returns the item the decorator is attached to.
func (d *decorated) Item() *Item {
	return d.item
}
