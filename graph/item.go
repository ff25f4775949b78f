package graph

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gmath"
)

// Item is a drawable, hit-testable element of a layer.
type Item struct {
	Id string

	// Data is owned by the caller and passed through to listeners untouched
	Data any

	Shape Shape
	Style Style

	Visible bool

	// enlarges the bounds by the given percentage to signal an interaction
	InflatePct float64

	// offset applied by dragging the item
	Offset gmath.Vec

	layer *Layer

	painters []PaintDecorator
	actions  []ActionDecorator
}

// NewItem creates a visible item. A random id is assigned if id is empty.
func NewItem(id string, shape Shape) *Item {
	if id == "" {
		id = uuid.NewString()
	}

	return &Item{
		Id:      id,
		Shape:   shape,
		Visible: true,
	}
}

// Layer returns the layer the item was added to, or nil.
func (it *Item) Layer() *Layer {
	return it.layer
}

// BoundRect returns the current bounds of the item including drag offset and
// inflation.
func (it *Item) BoundRect() gmath.Rect {
	if it.Shape == nil {
		return gmath.Rect{}
	}

	bounds := translateRect(it.Shape.Bounds(), it.Offset)
	return InflateRect(bounds, it.InflatePct)
}

func (it *Item) Contains(pos gmath.Vec) bool {
	return it.BoundRect().Contains(pos)
}

func (it *Item) Shift(dx, dy float64) {
	it.Offset = it.Offset.Add(gmath.Vec{X: dx, Y: dy})
}

// Decorate attaches decorators to the item. Each decorator is added to the
// paint chain, the action chain or both, depending on the capabilities it
// implements. The order of attachment is the order of invocation.
func (it *Item) Decorate(decorators ...any) {
	for _, decorator := range decorators {
		painter, isPainter := decorator.(PaintDecorator)
		action, isAction := decorator.(ActionDecorator)

		if !isPainter && !isAction {
			panic(fmt.Sprintf("graph: %T is neither a paint nor an action decorator", decorator))
		}

		if isPainter {
			it.painters = append(it.painters, painter)
		}

		if isAction {
			it.actions = append(it.actions, action)
		}
	}
}

func (it *Item) PaintDecorators() []PaintDecorator {
	return it.painters
}

func (it *Item) ActionDecorators() []ActionDecorator {
	return it.actions
}

// Dispatch invokes the call on the action decorators in order of attachment
// until one of them returns Handled.
func (it *Item) Dispatch(call func(ActionDecorator) Result) Result {
	for _, action := range it.actions {
		if call(action) == Handled {
			return Handled
		}
	}

	return Ignored
}

// Draw runs the before hooks, draws the shape and then runs the after hooks.
func (it *Item) Draw(target *ebiten.Image) {
	if !it.Visible {
		return
	}

	for _, painter := range it.painters {
		painter.PaintBefore(target)
	}

	if it.Shape != nil {
		it.Shape.Draw(target, it.BoundRect(), &it.Style)
	}

	for _, painter := range it.painters {
		painter.PaintAfter(target)
	}
}

func (it *Item) String() string {
	return "Item(" + it.Id + ")"
}
