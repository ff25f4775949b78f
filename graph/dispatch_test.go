package graph

import (
	"testing"
	"time"

	"github.com/quasilyte/gmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// handles a single gesture kind and records every callback it sees
type gestureRecorder struct {
	name   string
	handle string
	calls  *[]string
}

func (r *gestureRecorder) record(kind string) Result {
	*r.calls = append(*r.calls, r.name+"."+kind)
	if kind == r.handle {
		return Handled
	}

	return Ignored
}

func (r *gestureRecorder) OnDown(gmath.Vec) Result { return r.record("down") }
func (r *gestureRecorder) OnUp(gmath.Vec) Result   { return r.record("up") }
func (r *gestureRecorder) OnMove(gmath.Vec, gmath.Vec, float64, float64) Result {
	return r.record("move")
}
func (r *gestureRecorder) OnFling(gmath.Vec, gmath.Vec, float64, float64) Result {
	return r.record("fling")
}
func (r *gestureRecorder) OnClick(gmath.Vec) Result     { return r.record("click") }
func (r *gestureRecorder) OnSelect(gmath.Vec) Result    { return r.record("select") }
func (r *gestureRecorder) OnLongPress(gmath.Vec) Result { return r.record("longpress") }

func TestDispatcher_MissIsIgnored(t *testing.T) {
	ctx, _, _ := newTestContext()
	dispatcher := NewDispatcher(ctx)

	var calls []string

	layer := NewLayer("layer", true)
	item := rectItem("item", 0, 0, 10, 10)
	item.Decorate(&gestureRecorder{name: "item", handle: "click", calls: &calls})
	layer.AddItem(item)
	dispatcher.AddLayer(layer)

	assert.Equal(t, Ignored, dispatcher.Click(vec(50, 50)))
	assert.Empty(t, calls)

	assert.Equal(t, Handled, dispatcher.Click(vec(5, 5)))
	assert.Equal(t, []string{"item.click"}, calls)
}

func TestDispatcher_TopmostFirst(t *testing.T) {
	ctx, _, _ := newTestContext()
	dispatcher := NewDispatcher(ctx)

	var calls []string

	bottom := NewLayer("bottom", true)
	top := NewLayer("top", true)
	dispatcher.AddLayer(bottom)
	dispatcher.AddLayer(top)

	low := rectItem("low", 0, 0, 10, 10)
	low.Decorate(&gestureRecorder{name: "low", handle: "click", calls: &calls})
	bottom.AddItem(low)

	below := rectItem("below", 0, 0, 10, 10)
	below.Decorate(&gestureRecorder{name: "below", handle: "click", calls: &calls})
	above := rectItem("above", 0, 0, 10, 10)
	above.Decorate(&gestureRecorder{name: "above", calls: &calls})
	top.AddItem(below)
	top.AddItem(above)

	assert.Equal(t, []*Item{above, below, low}, dispatcher.ItemsAt(vec(5, 5)))

	// above ignores the click, it falls through to below
	assert.Equal(t, Handled, dispatcher.Click(vec(5, 5)))
	assert.Equal(t, []string{"above.click", "below.click"}, calls)

	// hidden layers are not hit tested
	top.Visible = false
	calls = nil

	assert.Equal(t, Handled, dispatcher.Click(vec(5, 5)))
	assert.Equal(t, []string{"low.click"}, calls)
}

func TestDispatcher_StreamFollowsTrackedItem(t *testing.T) {
	ctx, _, _ := newTestContext()
	dispatcher := NewDispatcher(ctx)

	layer := NewLayer("layer", true)
	item := rectItem("item", 0, 0, 10, 10)
	layer.AddItem(item)
	dispatcher.AddLayer(layer)

	listener := &recordingListener{}
	NewInteractiveDecorator(ctx, item, listener)

	dispatcher.Down(vec(5, 5))
	require.Equal(t, Handled, dispatcher.Select(vec(5, 5)))

	// the pointer leaves the bounds of the item quickly
	assert.Equal(t, Handled, dispatcher.Move(vec(5, 5), vec(40, 40), -35, -35))
	assert.Equal(t, vec(35, 35), item.Offset)

	assert.Equal(t, Ignored, dispatcher.Up(vec(40, 40)))
	assert.Nil(t, ctx.Tracked())
	assert.Equal(t, []string{"selected", "dragging", "dropped"}, listener.kinds())

	// no owner and nothing tracked after the up
	assert.Equal(t, Ignored, dispatcher.Move(vec(40, 40), vec(50, 50), -10, -10))
	assert.Equal(t, vec(35, 35), item.Offset)
}

func TestDispatcher_UpReachesOwnerOutsideBounds(t *testing.T) {
	ctx, _, _ := newTestContext()
	dispatcher := NewDispatcher(ctx)

	var calls []string

	layer := NewLayer("layer", true)
	item := rectItem("item", 0, 0, 10, 10)
	item.Decorate(&gestureRecorder{name: "item", calls: &calls})
	layer.AddItem(item)
	dispatcher.AddLayer(layer)

	dispatcher.Down(vec(5, 5))
	dispatcher.Move(vec(5, 5), vec(80, 80), -75, -75)
	dispatcher.Up(vec(80, 80))

	assert.Equal(t, []string{"item.down", "item.move", "item.up"}, calls)

	// a down on empty space clears the owner
	calls = nil
	dispatcher.Down(vec(80, 80))
	dispatcher.Up(vec(80, 80))
	assert.Empty(t, calls)
}

func TestDispatcher_FlingFollowsUp(t *testing.T) {
	ctx, _, _ := newTestContext()
	dispatcher := NewDispatcher(ctx)

	var calls []string

	layer := NewLayer("layer", true)
	item := rectItem("item", 0, 0, 10, 10)
	item.Decorate(&gestureRecorder{name: "item", handle: "fling", calls: &calls})
	layer.AddItem(item)
	dispatcher.AddLayer(layer)

	listener := &recordingListener{}
	NewInteractiveDecorator(ctx, item, listener)

	// the order in which gestures are recognized
	dispatcher.Down(vec(5, 5))
	require.Equal(t, Handled, dispatcher.Select(vec(5, 5)))
	dispatcher.Move(vec(5, 5), vec(60, 60), -55, -55)
	dispatcher.Up(vec(60, 60))
	require.Nil(t, ctx.Tracked())

	assert.Equal(t, Handled, dispatcher.Fling(vec(5, 5), vec(60, 60), 1200, 1200))
	assert.Equal(t, []string{"item.down", "item.select", "item.move", "item.up", "item.fling"}, calls)
	assert.Equal(t, []string{"selected", "dragging", "dropped"}, listener.kinds())

	// the next press starts over
	calls = nil
	dispatcher.Down(vec(90, 90))
	assert.Equal(t, Ignored, dispatcher.Fling(vec(90, 90), vec(95, 95), 1200, 1200))
	assert.Empty(t, calls)
}

func TestDispatcher_UpWithTwoDecorators(t *testing.T) {
	ctx, _, clock := newTestContext()
	dispatcher := NewDispatcher(ctx)

	layer := NewLayer("layer", true)
	item := rectItem("item", 0, 0, 10, 10)
	progress := NewItem("progress", &ProgressBar{Rect: rectOf(0, 20, 10, 22)})
	layer.AddItem(item)
	layer.AddItem(progress)
	dispatcher.AddLayer(layer)

	listener := &recordingListener{}
	longPress := NewLongPressDecorator(ctx, item, progress, 5, listener)
	NewInteractiveDecorator(ctx, item, listener)

	dispatcher.Down(vec(5, 5))
	require.Equal(t, Handled, dispatcher.Select(vec(5, 5)))

	// both decorators saw the select
	assert.Equal(t, item, ctx.Tracked())
	assert.True(t, progress.Visible)

	ctx.Advance(clock.Add(500 * time.Millisecond))

	// neither decorator consumes the up, so both of them reset
	assert.Equal(t, Ignored, dispatcher.Up(vec(5, 5)))
	assert.Nil(t, ctx.Tracked())
	assert.Zero(t, item.InflatePct)
	assert.False(t, progress.Visible)
	assert.Equal(t, TimerReleased, longPress.Timer.State())
	assert.Equal(t, []string{"selected", "dropped"}, listener.kinds())
}

func TestDispatcher_DragAbandonsLongPress(t *testing.T) {
	ctx, _, clock := newTestContext()
	dispatcher := NewDispatcher(ctx)

	layer := NewLayer("layer", true)
	item := rectItem("item", 0, 0, 10, 10)
	progress := NewItem("progress", &ProgressBar{Rect: rectOf(0, 20, 10, 22)})
	layer.AddItem(item)
	layer.AddItem(progress)
	dispatcher.AddLayer(layer)

	listener := &recordingListener{}
	longPress := NewLongPressDecorator(ctx, item, progress, 5, listener)
	NewInteractiveDecorator(ctx, item, listener)

	dispatcher.Down(vec(5, 5))
	dispatcher.Select(vec(5, 5))
	dispatcher.Move(vec(5, 5), vec(15, 5), -10, 0)

	assert.Equal(t, TimerAbandoned, longPress.Timer.State())
	assert.Equal(t, vec(10, 0), item.Offset)

	ctx.Advance(clock.Add(10 * time.Second))
	assert.NotContains(t, listener.kinds(), "triggered")
}

func TestDispatcher_SelectItemHandsOver(t *testing.T) {
	ctx, _, _ := newTestContext()
	dispatcher := NewDispatcher(ctx)

	layer := NewLayer("layer", true)
	source := rectItem("source", 0, 0, 10, 10)
	spawned := rectItem("spawned", 40, 40, 60, 60)
	layer.AddItem(source)
	layer.AddItem(spawned)
	dispatcher.AddLayer(layer)

	listener := &recordingListener{}
	NewInteractiveDecorator(ctx, source, listener)
	NewInteractiveDecorator(ctx, spawned, listener)

	dispatcher.Down(vec(5, 5))
	require.Equal(t, Handled, dispatcher.Select(vec(5, 5)))

	require.Equal(t, Handled, dispatcher.SelectItem(spawned))
	assert.Equal(t, spawned, ctx.Tracked())
	assert.Zero(t, source.InflatePct)

	// the running press now drags the spawned item
	dispatcher.Move(vec(5, 5), vec(7, 7), -2, -2)
	assert.Equal(t, vec(2, 2), spawned.Offset)
	assert.Equal(t, vec(0, 0), source.Offset)

	dispatcher.Up(vec(7, 7))
	assert.Nil(t, ctx.Tracked())

	dropped := listener.last()
	assert.Equal(t, "dropped", dropped.Kind)
	assert.Equal(t, spawned, dropped.Item)
}

func TestDispatcher_Layers(t *testing.T) {
	ctx, _, _ := newTestContext()
	dispatcher := NewDispatcher(ctx)

	a := NewLayer("a", true)
	b := NewLayer("b", false)
	dispatcher.AddLayer(a)
	dispatcher.AddLayer(b)

	assert.Equal(t, ctx, dispatcher.Context())
	assert.Equal(t, []*Layer{a, b}, dispatcher.Layers(nil))
	assert.Equal(t, []*Layer{a}, dispatcher.Layers(func(layer *Layer) bool { return layer.Visible }))

	assert.Equal(t, 1, dispatcher.RemoveLayers(func(layer *Layer) bool { return layer.Id == "b" }))
	assert.Equal(t, []*Layer{a}, dispatcher.Layers(nil))
}
