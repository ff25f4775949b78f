package main

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/oliverbestmann/gaminglife/config"
	"github.com/oliverbestmann/gaminglife/graph"
	. "github.com/quasilyte/gmath"
	"github.com/stretchr/testify/assert"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Add(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func newTestView(t *testing.T) (*GraphView, *testClock) {
	t.Helper()

	view := NewGraphView(config.Default(), log.New(io.Discard))

	// no audio device in tests
	view.haptic = &Haptic{}

	clock := &testClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)}
	view.Context().Now = clock.Now

	return view, clock
}

type testApp struct {
	view     *GraphView
	clock    *testClock
	tasks    *TaskLog
	recorder *JournalRecorder
	record   *AudioRecordController
	timeView *TimeViewController
}

func newTestApp(t *testing.T, width, height int) *testApp {
	t.Helper()

	view, clock := newTestView(t)

	view.Layer(LayerTimeView, true)

	recorder := &JournalRecorder{Logger: view.Logger}
	record := NewAudioRecordController(view, recorder)

	tasks := NewTaskLog(config.GroupIdRelax, clock.Now())
	timeView := NewTimeViewController(view, config.Default(), tasks, record)

	view.resize(width, height)

	return &testApp{
		view:     view,
		clock:    clock,
		tasks:    tasks,
		recorder: recorder,
		record:   record,
		timeView: timeView,
	}
}

// drag presses at from, selects the item below and drops it at to
func (a *testApp) drag(from, to Vec) {
	dispatcher := a.view.Dispatcher()

	dispatcher.Down(from)
	dispatcher.Select(from)
	dispatcher.Move(from, to, from.X-to.X, from.Y-to.Y)
	dispatcher.Up(to)
}

func (a *testApp) item(id string) *graph.Item {
	for _, layer := range a.view.Dispatcher().Layers(nil) {
		if item := layer.FirstItem(func(item *graph.Item) bool { return item.Id == id }); item != nil {
			return item
		}
	}

	return nil
}

func originOf(item *graph.Item) Vec {
	return item.Shape.(*graph.Circle).Origin
}

func TestGraphView_Surface(t *testing.T) {
	view, _ := newTestView(t)

	view.resize(540, 960)
	assert.True(t, view.IsPortrait())
	assert.InDelta(t, 5.4, view.UnitScale(), 1e-9)
	assert.Equal(t, Rect{Max: Vec{X: 540, Y: 960}}, view.PaintArea())

	view.resize(960, 540)
	assert.False(t, view.IsPortrait())
	assert.InDelta(t, 5.4, view.UnitScale(), 1e-9)

	assert.NotPanics(t, func() { view.Vibrate(100 * time.Millisecond) })
}

func TestGraphView_Layer(t *testing.T) {
	view, _ := newTestView(t)

	a := view.Layer("a", true)
	b := view.Layer("b", false)

	assert.Same(t, a, view.Layer("a", false))
	assert.Equal(t, []*graph.Layer{a, b}, view.Dispatcher().Layers(nil))
	assert.True(t, a.Visible)
	assert.False(t, b.Visible)
}

func TestGraphView_ObserverStack(t *testing.T) {
	app := newTestApp(t, 540, 960)
	view := app.view

	assert.Equal(t, Observer(app.timeView), view.observer())

	view.PushObserver(app.record)
	assert.Equal(t, Observer(app.record), view.observer())

	assert.Equal(t, Observer(app.record), view.PopObserver())
	assert.Equal(t, Observer(app.timeView), view.PopObserver())
	assert.Nil(t, view.PopObserver())

	// events without observer are dropped
	assert.NotPanics(t, func() { view.OnItemClicked(app.timeView.statistics) })
}

func TestGraphView_AddControllerAfterResize(t *testing.T) {
	view, _ := newTestView(t)
	view.resize(540, 960)

	record := NewAudioRecordController(view, &JournalRecorder{Logger: view.Logger})

	// laid out right away
	assert.Positive(t, record.audio.Shape.(*graph.Circle).Radius)
	assert.InDelta(t, 5.4, float64(record.audio.Style.StrokeWidth), 1e-6)
}

func TestGraphView_Pollers(t *testing.T) {
	app := newTestApp(t, 540, 960)

	for _, poll := range app.view.pollers {
		poll(app.clock.Now())
	}

	assert.Equal(t, "12:00:00", app.timeView.clock.Text)
}
