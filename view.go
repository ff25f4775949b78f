package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/oliverbestmann/gaminglife/config"
	"github.com/oliverbestmann/gaminglife/gesture"
	"github.com/oliverbestmann/gaminglife/graph"
	"github.com/oliverbestmann/gaminglife/tween"
	. "github.com/quasilyte/gmath"
)

// Observer receives the layout callbacks of the view and, while it is on
// top of the observer stack, the item events of all decorated items.
type Observer interface {
	graph.Listener

	OnViewSizeChanged(width, height, oldWidth, oldHeight int)
	OnItemLayout()
}

// GraphView hosts the layers of the application in an ebiten game. It is the
// surface of the graph context and the listener of all decorators, item events
// are forwarded to the observer on top of the stack.
type GraphView struct {
	Logger *log.Logger

	ctx        *graph.Context
	dispatcher *graph.Dispatcher

	pointer    gesture.Pointer
	recognizer *gesture.Recognizer

	tweens   tween.Tweens
	backdrop *Backdrop
	audio    *Audio
	haptic   *Haptic

	// all controllers, notified about layout changes
	controllers []Observer

	// receivers of item events, the last one is active
	observers []Observer

	pollers []func(now time.Time)

	width  int
	height int

	dirty bool
	debug bool

	now time.Time
}

func NewGraphView(conf config.Config, logger *log.Logger) *GraphView {
	view := &GraphView{
		Logger:     logger,
		recognizer: gesture.NewRecognizer(conf.Gesture.Settings()),
		backdrop:   NewBackdrop(int32(time.Now().Unix()), BackgroundColor, BackgroundShadeColor),
		audio:      &Audio{},
		debug:      conf.Debug,
		dirty:      true,
	}

	view.haptic = &Haptic{Audio: view.audio, Logger: logger}

	view.ctx = graph.NewContext(view)
	view.ctx.Logger = logger
	view.ctx.Settings = conf.Interaction.Settings()

	view.dispatcher = graph.NewDispatcher(view.ctx)

	return view
}

func (v *GraphView) Context() *graph.Context {
	return v.ctx
}

func (v *GraphView) Dispatcher() *graph.Dispatcher {
	return v.dispatcher
}

func (v *GraphView) Tweens() *tween.Tweens {
	return &v.tweens
}

// Layer returns the layer with the given id, or creates a new one on top of
// all other layers.
func (v *GraphView) Layer(id string, visible bool) *graph.Layer {
	layers := v.dispatcher.Layers(func(layer *graph.Layer) bool { return layer.Id == id })
	if len(layers) > 0 {
		return layers[0]
	}

	layer := graph.NewLayer(id, visible)
	v.dispatcher.AddLayer(layer)
	return layer
}

// AddController registers a controller for layout notifications.
func (v *GraphView) AddController(controller Observer) {
	v.controllers = append(v.controllers, controller)

	if v.width > 0 && v.height > 0 {
		controller.OnViewSizeChanged(v.width, v.height, 0, 0)
		controller.OnItemLayout()
	}
}

func (v *GraphView) PushObserver(observer Observer) {
	v.observers = append(v.observers, observer)
}

func (v *GraphView) PopObserver() Observer {
	if len(v.observers) == 0 {
		return nil
	}

	return pop(&v.observers)
}

// AddPoller registers a function called once per update.
func (v *GraphView) AddPoller(poll func(now time.Time)) {
	v.pollers = append(v.pollers, poll)
}

func (v *GraphView) Update() error {
	now := v.ctx.Now()

	var dt time.Duration
	if !v.now.IsZero() {
		dt = now.Sub(v.now)
	}

	v.now = now

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		v.debug = !v.debug
		v.Refresh()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		muted := v.audio.ToggleMute()
		v.Logger.Info("Toggled haptic feedback", "muted", muted)
	}

	pos, pressed := v.pointer.Poll()
	for _, event := range v.recognizer.Update(now, pos, pressed) {
		v.dispatch(event)
	}

	v.ctx.Advance(now)

	if v.tweens.Len() > 0 {
		v.tweens.Update(dt)
		v.Refresh()
	}

	for _, poll := range v.pollers {
		poll(now)
	}

	return nil
}

func (v *GraphView) dispatch(event gesture.Event) {
	var result graph.Result

	switch event.Kind {
	case gesture.Down:
		result = v.dispatcher.Down(event.Pos)
	case gesture.Up:
		result = v.dispatcher.Up(event.Pos)
	case gesture.Move:
		result = v.dispatcher.Move(event.From, event.Pos, event.Delta.X, event.Delta.Y)
	case gesture.Fling:
		result = v.dispatcher.Fling(event.From, event.Pos, event.Velocity.X, event.Velocity.Y)
	case gesture.Click:
		result = v.dispatcher.Click(event.Pos)
	case gesture.Select:
		result = v.dispatcher.Select(event.Pos)
	case gesture.LongPress:
		result = v.dispatcher.LongPress(event.Pos)
	}

	// moves are too noisy to log
	if event.Kind != gesture.Move {
		v.Logger.Debug("Gesture", "kind", event.Kind, "pos", event.Pos, "result", result)
	}
}

func (v *GraphView) Draw(screen *ebiten.Image) {
	if !v.dirty && !v.debug {
		return
	}

	v.dirty = false

	v.backdrop.Draw(screen)
	v.dispatcher.Draw(screen)

	if v.debug {
		msg := fmt.Sprintf("%1.1f fps, %d tasks, tracked %s", ebiten.ActualFPS(), v.ctx.Pending(), v.ctx.Tracked())
		pos := Vec{X: 8, Y: float64(v.height) - 8}
		graph.DrawText(screen, msg, graph.FontFace(v.UnitScale()*2.5), pos, DebugColor, text.AlignStart, text.AlignEnd)
	}
}

func (v *GraphView) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	scale := ebiten.Monitor().DeviceScaleFactor()

	width := int(float64(outsideWidth) * scale)
	height := int(float64(outsideHeight) * scale)

	if width != v.width || height != v.height {
		v.pointer.ToWorld = ebiten.GeoM{}
		v.pointer.ToWorld.Scale(scale, scale)

		v.resize(width, height)
	}

	return width, height
}

func (v *GraphView) resize(width, height int) {
	oldWidth, oldHeight := v.width, v.height
	v.width, v.height = width, height

	v.Logger.Debug("View size changed", "width", width, "height", height)

	for _, controller := range v.controllers {
		controller.OnViewSizeChanged(width, height, oldWidth, oldHeight)
		controller.OnItemLayout()
	}

	v.Refresh()
}

// Refresh implements graph.Surface.
func (v *GraphView) Refresh() {
	v.dirty = true
}

// UnitScale implements graph.Surface.
func (v *GraphView) UnitScale() float64 {
	return float64(min(v.width, v.height)) / 100
}

// PaintArea implements graph.Surface.
func (v *GraphView) PaintArea() Rect {
	return Rect{Max: Vec{X: float64(v.width), Y: float64(v.height)}}
}

// IsPortrait implements graph.Surface.
func (v *GraphView) IsPortrait() bool {
	return v.height >= v.width
}

// Vibrate implements graph.Surface.
func (v *GraphView) Vibrate(duration time.Duration) {
	v.haptic.Pulse(duration)
}

func (v *GraphView) observer() Observer {
	if len(v.observers) == 0 {
		return nil
	}

	return v.observers[len(v.observers)-1]
}

func (v *GraphView) OnItemSelected(item *graph.Item) {
	if observer := v.observer(); observer != nil {
		observer.OnItemSelected(item)
	}
}

func (v *GraphView) OnItemDragging(item *graph.Item, intersecting []*graph.Item) {
	if observer := v.observer(); observer != nil {
		observer.OnItemDragging(item, intersecting)
	}
}

func (v *GraphView) OnItemDropped(item *graph.Item, intersecting []*graph.Item) {
	if observer := v.observer(); observer != nil {
		observer.OnItemDropped(item, intersecting)
	}
}

func (v *GraphView) OnItemClicked(item *graph.Item) {
	if observer := v.observer(); observer != nil {
		observer.OnItemClicked(item)
	}
}

func (v *GraphView) OnItemTriggered(item *graph.Item) {
	if observer := v.observer(); observer != nil {
		observer.OnItemTriggered(item)
	}
}

func pop[T any](values *[]T) T {
	n := len(*values)
	if n == 0 {
		panic("slice is empty")
	}

	value := (*values)[n-1]
	*values = (*values)[:n-1]

	return value
}
