package graph

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gmath"
)

type fakeSurface struct {
	refreshes int
	pulses    []time.Duration
}

func (s *fakeSurface) Refresh()                 { s.refreshes++ }
func (s *fakeSurface) UnitScale() float64       { return 1 }
func (s *fakeSurface) PaintArea() gmath.Rect    { return rectOf(0, 0, 100, 100) }
func (s *fakeSurface) IsPortrait() bool         { return true }
func (s *fakeSurface) Vibrate(d time.Duration) { s.pulses = append(s.pulses, d) }

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Add(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

type recordedEvent struct {
	Kind         string
	Item         *Item
	Intersecting []*Item
}

type recordingListener struct {
	events []recordedEvent
}

func (l *recordingListener) OnItemSelected(item *Item) {
	l.events = append(l.events, recordedEvent{Kind: "selected", Item: item})
}

func (l *recordingListener) OnItemDragging(item *Item, intersecting []*Item) {
	l.events = append(l.events, recordedEvent{Kind: "dragging", Item: item, Intersecting: intersecting})
}

func (l *recordingListener) OnItemDropped(item *Item, intersecting []*Item) {
	l.events = append(l.events, recordedEvent{Kind: "dropped", Item: item, Intersecting: intersecting})
}

func (l *recordingListener) OnItemClicked(item *Item) {
	l.events = append(l.events, recordedEvent{Kind: "clicked", Item: item})
}

func (l *recordingListener) OnItemTriggered(item *Item) {
	l.events = append(l.events, recordedEvent{Kind: "triggered", Item: item})
}

func (l *recordingListener) kinds() []string {
	var kinds []string
	for _, event := range l.events {
		kinds = append(kinds, event.Kind)
	}

	return kinds
}

func (l *recordingListener) last() recordedEvent {
	return l.events[len(l.events)-1]
}

func newTestContext() (*Context, *fakeSurface, *fakeClock) {
	surface := &fakeSurface{}
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}

	ctx := NewContext(surface)
	ctx.Logger = log.New(io.Discard)
	ctx.Now = clock.Now

	return ctx, surface, clock
}

func rectItem(id string, x0, y0, x1, y1 float64) *Item {
	return NewItem(id, &Rectangle{Rect: rectOf(x0, y0, x1, y1)})
}

func vec(x, y float64) gmath.Vec {
	return gmath.Vec{X: x, Y: y}
}
