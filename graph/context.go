package graph

import (
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gmath"
)

// Surface is the view the graph is rendered to.
type Surface interface {
	// Refresh requests a redraw. Multiple requests before the next frame
	// collapse into one paint.
	Refresh()

	// UnitScale is the size of one device independent unit in pixels.
	UnitScale() float64

	PaintArea() gmath.Rect
	IsPortrait() bool

	// Vibrate emits a short haptic pulse.
	Vibrate(duration time.Duration)
}

type Settings struct {
	// inflation applied to an item while it is dragged
	InflatePct float64

	// haptic pulse when an item gets selected
	VibrateDuration time.Duration

	// a press is escalated into a trigger after this timeout
	LongPressTimeout time.Duration

	// period of the long press progress updates
	LongPressInterval time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		InflatePct:        10,
		VibrateDuration:   100 * time.Millisecond,
		LongPressTimeout:  2 * time.Second,
		LongPressInterval: 100 * time.Millisecond,
	}
}

type TaskStatus int

const (
	TaskRunning TaskStatus = iota
	TaskDone
)

// Task is deferred work advanced by Context.Advance until it reports TaskDone.
type Task interface {
	Advance(now time.Time) TaskStatus
}

// Context is the interaction state shared by all decorators of a view. It
// owns the tracked item: at most one item is dragged at any time.
// A Context is not safe for concurrent use, all calls are expected to come
// from the update loop of the host.
type Context struct {
	Surface  Surface
	Logger   *log.Logger
	Settings Settings

	// Now returns the current time, defaults to time.Now
	Now func() time.Time

	tracked     *Item
	trackedLost func()

	tasks []Task
}

func NewContext(surface Surface) *Context {
	return &Context{
		Surface:  surface,
		Logger:   log.Default(),
		Settings: DefaultSettings(),
		Now:      time.Now,
	}
}

// Tracked returns the item that is currently dragged, or nil.
func (c *Context) Tracked() *Item {
	return c.tracked
}

func (c *Context) IsTracked(item *Item) bool {
	return item != nil && c.tracked == item
}

// Track makes the item the tracked item. A previously tracked item loses its
// tracking and its lost callback is invoked.
func (c *Context) Track(item *Item, lost func()) {
	previous, previousLost := c.tracked, c.trackedLost

	c.tracked = item
	c.trackedLost = lost

	if previous != nil && previous != item {
		c.log().Debug("Tracking superseded", "previous", previous, "item", item)

		if previousLost != nil {
			previousLost()
		}
	}
}

// Release clears the tracked item if it is the given item.
func (c *Context) Release(item *Item) bool {
	if !c.IsTracked(item) {
		return false
	}

	c.tracked = nil
	c.trackedLost = nil
	return true
}

// Schedule adds a task to be advanced by Advance. Scheduling a task that is
// already pending has no effect.
func (c *Context) Schedule(task Task) {
	if slices.Contains(c.tasks, task) {
		return
	}

	c.tasks = append(c.tasks, task)
}

// Advance runs all pending tasks and drops the ones that are done. It returns
// the number of tasks still pending.
func (c *Context) Advance(now time.Time) int {
	// tasks may schedule new tasks while running
	tasks := slices.Clone(c.tasks)

	for _, task := range tasks {
		if task.Advance(now) == TaskDone {
			c.tasks = slices.DeleteFunc(c.tasks, func(t Task) bool { return t == task })
		}
	}

	return len(c.tasks)
}

func (c *Context) Pending() int {
	return len(c.tasks)
}

func (c *Context) Refresh() {
	if c.Surface != nil {
		c.Surface.Refresh()
	}
}

func (c *Context) Vibrate(duration time.Duration) {
	if c.Surface != nil && duration > 0 {
		c.Surface.Vibrate(duration)
	}
}

func (c *Context) UnitScale() float64 {
	if c.Surface == nil {
		return 1
	}

	return c.Surface.UnitScale()
}

func (c *Context) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}

	return c.Now()
}

func (c *Context) log() *log.Logger {
	if c.Logger == nil {
		return log.Default()
	}

	return c.Logger
}
