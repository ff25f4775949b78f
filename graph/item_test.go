package graph

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gmath"
	"github.com/stretchr/testify/assert"
)

type recordingShape struct {
	bounds gmath.Rect
	calls  *[]string
}

func (s *recordingShape) Bounds() gmath.Rect { return s.bounds }

func (s *recordingShape) Draw(_ *ebiten.Image, _ gmath.Rect, _ *Style) {
	*s.calls = append(*s.calls, "shape")
}

type recordingPainter struct {
	name  string
	calls *[]string
}

func (p *recordingPainter) PaintBefore(*ebiten.Image) {
	*p.calls = append(*p.calls, p.name+".before")
}

func (p *recordingPainter) PaintAfter(*ebiten.Image) {
	*p.calls = append(*p.calls, p.name+".after")
}

type recordingAction struct {
	NopActions
	name   string
	result Result
	calls  *[]string
}

func (a *recordingAction) OnUp(gmath.Vec) Result {
	*a.calls = append(*a.calls, a.name+".up")
	return a.result
}

// implements both capabilities
type recordingBoth struct {
	recordingPainter
	recordingAction
}

func TestItem_NewItemAssignsId(t *testing.T) {
	item := NewItem("", &Circle{Radius: 1})
	assert.NotEmpty(t, item.Id)
	assert.True(t, item.Visible)

	other := NewItem("", &Circle{Radius: 1})
	assert.NotEqual(t, item.Id, other.Id)

	assert.Equal(t, "fixed", NewItem("fixed", nil).Id)
}

func TestItem_BoundRect(t *testing.T) {
	item := NewItem("circle", &Circle{Origin: vec(10, 10), Radius: 5})
	assert.Equal(t, rectOf(5, 5, 15, 15), item.BoundRect())

	item.Shift(2, -1)
	assert.Equal(t, rectOf(7, 4, 17, 14), item.BoundRect())

	item.InflatePct = 20
	assert.InDeltaSlice(t,
		[]float64{6, 3, 18, 15},
		[]float64{item.BoundRect().Min.X, item.BoundRect().Min.Y, item.BoundRect().Max.X, item.BoundRect().Max.Y},
		1e-9)

	assert.True(t, item.Contains(vec(12, 9)))
	assert.False(t, item.Contains(vec(2, 2)))
}

func TestItem_DecorateSortsCapabilities(t *testing.T) {
	var calls []string

	item := NewItem("item", nil)
	painter := &recordingPainter{name: "p", calls: &calls}
	action := &recordingAction{name: "a", calls: &calls}
	both := &recordingBoth{
		recordingPainter: recordingPainter{name: "both", calls: &calls},
		recordingAction:  recordingAction{name: "both", calls: &calls},
	}

	item.Decorate(painter, action, both)

	assert.Equal(t, []PaintDecorator{painter, both}, item.PaintDecorators())
	assert.Equal(t, []ActionDecorator{action, both}, item.ActionDecorators())

	assert.Panics(t, func() { item.Decorate("not a decorator") })
}

func TestItem_DrawOrder(t *testing.T) {
	var calls []string

	item := NewItem("item", &recordingShape{bounds: rectOf(0, 0, 1, 1), calls: &calls})
	item.Decorate(
		&recordingPainter{name: "first", calls: &calls},
		&recordingPainter{name: "second", calls: &calls},
	)

	item.Draw(nil)

	assert.Equal(t, []string{
		"first.before", "second.before",
		"shape",
		"first.after", "second.after",
	}, calls)

	// invisible items are not painted
	calls = nil
	item.Visible = false
	item.Draw(nil)
	assert.Empty(t, calls)
}

func TestItem_DispatchStopsAtHandled(t *testing.T) {
	var calls []string

	item := NewItem("item", nil)
	item.Decorate(
		&recordingAction{name: "first", result: Handled, calls: &calls},
		&recordingAction{name: "second", result: Handled, calls: &calls},
	)

	result := item.Dispatch(func(action ActionDecorator) Result {
		return action.OnUp(vec(0, 0))
	})

	assert.Equal(t, Handled, result)
	assert.Equal(t, []string{"first.up"}, calls)
}

func TestItem_DispatchFallsThroughIgnored(t *testing.T) {
	var calls []string

	item := NewItem("item", nil)
	item.Decorate(
		&recordingAction{name: "first", result: Ignored, calls: &calls},
		&recordingAction{name: "second", result: Ignored, calls: &calls},
	)

	result := item.Dispatch(func(action ActionDecorator) Result {
		return action.OnUp(vec(0, 0))
	})

	assert.Equal(t, Ignored, result)
	assert.Equal(t, []string{"first.up", "second.up"}, calls)
}
