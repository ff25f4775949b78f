package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/fogleman/ease"
	"github.com/oliverbestmann/gaminglife/graph"
	"github.com/oliverbestmann/gaminglife/tween"
	. "github.com/quasilyte/gmath"
)

const recordLayerAlpha = 128

const recordFadeDuration = 200 * time.Millisecond

// AudioRecordController owns the record layer. Once it takes control, the
// running press drags the audio circle. Releasing it keeps the voice note,
// dropping it onto cancel discards it and dropping it onto text asks for a
// text note instead.
type AudioRecordController struct {
	view     *GraphView
	recorder Recorder
	logger   *log.Logger

	// called when the user asked for a text note
	OnTextRequested func()

	layer *graph.Layer

	audio  *graph.Item
	cancel *graph.Item
	text   *graph.Item

	router graph.DropRouter
}

func NewAudioRecordController(view *GraphView, recorder Recorder) *AudioRecordController {
	c := &AudioRecordController{
		view:     view,
		recorder: recorder,
		logger:   view.Logger.WithPrefix("record"),
	}

	c.router.OnRelease = c.commit
	c.router.Handle(ItemRecordCancel, c.discard)
	c.router.Handle(ItemRecordText, c.requestText)

	c.buildItems()

	view.AddController(c)

	return c
}

func (c *AudioRecordController) buildItems() {
	ctx := c.view.Context()

	layer := c.view.Layer(LayerRecord, false)
	layer.SetBackgroundAlpha(recordLayerAlpha)
	layer.RemoveItems(func(*graph.Item) bool { return true })

	c.audio = graph.NewItem(ItemRecordAudio, &graph.Circle{})
	c.audio.Style = graph.Style{Fill: RecordColor, Stroke: StrokeColor}
	graph.NewInteractiveDecorator(ctx, c.audio, c.view)
	graph.NewAutoFitTextDecorator(ctx, c.audio, "A", TextLightColor)
	layer.AddItem(c.audio)

	c.cancel = graph.NewItem(ItemRecordCancel, &graph.Circle{})
	c.cancel.Style = graph.Style{Fill: RecordColor, Stroke: StrokeColor}
	graph.NewAutoFitTextDecorator(ctx, c.cancel, "Cancel", TextDarkColor)
	layer.AddItem(c.cancel)

	c.text = graph.NewItem(ItemRecordText, &graph.Rectangle{})
	c.text.Style = graph.Style{Fill: RecordColor, Stroke: StrokeColor}
	graph.NewAutoFitTextDecorator(ctx, c.text, "Text", TextDarkColor)
	layer.AddItem(c.text)

	c.layer = layer
}

// Active reports whether the record layer has control.
func (c *AudioRecordController) Active() bool {
	return c.layer.Visible
}

// TakeControl shows the record layer, starts recording and hands the running
// press over to the audio circle.
func (c *AudioRecordController) TakeControl() {
	c.layoutItems()

	c.layer.Visible = true
	c.fadeIn()

	c.view.PushObserver(c)

	if err := c.recorder.Start(c.view.Context().Now()); err != nil {
		c.logger.Error("Could not start recording", "err", err)
	}

	c.view.Dispatcher().SelectItem(c.audio)
	c.view.Refresh()
}

func (c *AudioRecordController) releaseControl() {
	c.layer.Visible = false
	c.audio.Offset = Vec{}
	c.view.Tweens().Cancel(LayerRecord)

	popped := c.view.PopObserver()
	if popped != c {
		panic("record layer released an observer it does not own")
	}

	c.view.Refresh()
}

func (c *AudioRecordController) fadeIn() {
	c.layer.SetBackgroundAlpha(0)

	c.view.Tweens().Set(LayerRecord, &tween.Simple{
		Duration: recordFadeDuration,
		Ease:     ease.OutQuad,
		Target:   tween.LerpAlpha(c.layer.SetBackgroundAlpha, 0, recordLayerAlpha),
	})
}

func (c *AudioRecordController) commit(dropped *graph.Item) {
	if err := c.recorder.Commit(); err != nil {
		c.logger.Error("Could not keep recording", "err", err)
	}
}

func (c *AudioRecordController) discard(dropped, target *graph.Item) {
	if err := c.recorder.Discard(); err != nil {
		c.logger.Error("Could not discard recording", "err", err)
	}
}

func (c *AudioRecordController) requestText(dropped, target *graph.Item) {
	c.discard(dropped, target)

	c.logger.Info("Text note requested")

	if c.OnTextRequested != nil {
		c.OnTextRequested()
	}
}

func (c *AudioRecordController) OnViewSizeChanged(width, height, oldWidth, oldHeight int) {
	strokeWidth := float32(c.view.UnitScale())

	c.audio.Style.StrokeWidth = strokeWidth
	c.cancel.Style.StrokeWidth = strokeWidth
	c.text.Style.StrokeWidth = strokeWidth
}

func (c *AudioRecordController) OnItemLayout() {
	c.layoutItems()
}

func (c *AudioRecordController) layoutItems() {
	area := c.view.PaintArea()
	unit := c.view.UnitScale()

	audio := c.audio.Shape.(*graph.Circle)
	cancel := c.cancel.Shape.(*graph.Circle)
	text := c.text.Shape.(*graph.Rectangle)

	audio.Radius = 20 * unit
	cancel.Radius = 15 * unit

	if c.view.IsPortrait() {
		audio.Origin = Vec{X: area.Width() / 2, Y: area.Height() / 2}
		cancel.Origin = Vec{X: area.Width() / 2, Y: area.Height() / 4}

		text.Rect = Rect{
			Min: Vec{X: area.Min.X + 15*unit, Y: area.Max.Y - 35*unit},
			Max: Vec{X: area.Max.X - 15*unit, Y: area.Max.Y - 15*unit},
		}
	} else {
		audio.Origin = Vec{X: area.Width() / 2, Y: area.Height() / 2}
		cancel.Origin = Vec{X: area.Width() / 4, Y: area.Height() / 2}

		textCenter := Vec{X: 4 * area.Width() / 5, Y: area.Height() / 2}
		text.Rect = Rect{
			Min: textCenter.Sub(Vec{X: 15 * unit, Y: 10 * unit}),
			Max: textCenter.Add(Vec{X: 15 * unit, Y: 10 * unit}),
		}
	}
}

func (c *AudioRecordController) OnItemSelected(item *graph.Item) {
}

func (c *AudioRecordController) OnItemDragging(item *graph.Item, intersecting []*graph.Item) {
}

func (c *AudioRecordController) OnItemDropped(item *graph.Item, intersecting []*graph.Item) {
	recording, err := c.recorder.Stop(c.view.Context().Now())
	if err != nil {
		c.logger.Error("Could not stop recording", "err", err)
	} else {
		c.logger.Debug("Recording dropped", "id", recording.Id, "targets", len(intersecting))
	}

	c.router.Resolve(item, intersecting)
	c.releaseControl()
}

func (c *AudioRecordController) OnItemClicked(item *graph.Item) {
}

func (c *AudioRecordController) OnItemTriggered(item *graph.Item) {
}
