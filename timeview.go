package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fogleman/ease"
	"github.com/oliverbestmann/gaminglife/config"
	"github.com/oliverbestmann/gaminglife/graph"
	"github.com/oliverbestmann/gaminglife/tween"
	. "github.com/quasilyte/gmath"
)

const snapBackDuration = 250 * time.Millisecond

// TimeViewController shows the current task in a center circle surrounded by
// the task groups. Dropping the center onto a group, or a group onto the
// center, switches the current task. Holding the center starts a voice note.
type TimeViewController struct {
	view   *GraphView
	record *AudioRecordController
	tasks  *TaskLog
	logger *log.Logger

	groups []config.TaskGroup
	colors map[string]color.Color

	// distance in units that abandons the long press
	abandonDistance float64

	layer *graph.Layer

	center   *graph.Item
	progress *graph.Item
	surround []*graph.Item

	daily      *graph.Item
	statistics *graph.Item

	clock      *graph.AutoFitTextDecorator
	longPress  *graph.LongPressDecorator
	sections   *graph.SectionProgressDecorator
	statsBars  *graph.StatisticsBarDecorator
	showShares bool

	lastPoll time.Time
}

func NewTimeViewController(view *GraphView, conf config.Config, tasks *TaskLog, record *AudioRecordController) *TimeViewController {
	c := &TimeViewController{
		view:            view,
		record:          record,
		tasks:           tasks,
		logger:          view.Logger.WithPrefix("timeview"),
		groups:          conf.Groups,
		colors:          map[string]color.Color{},
		abandonDistance: conf.Interaction.AbandonDistance,
	}

	for _, group := range conf.Groups {
		// the config was validated, colors are well formed
		c.colors[group.Id], _ = graph.ParseHexColor(group.Color)
	}

	c.buildItems()

	view.AddController(c)
	view.PushObserver(c)
	view.AddPoller(c.Poll)

	return c
}

func (c *TimeViewController) buildItems() {
	ctx := c.view.Context()

	c.layer = c.view.Layer(LayerTimeView, true)
	c.layer.RemoveItems(func(*graph.Item) bool { return true })

	for _, group := range c.groups {
		item := graph.NewItem(group.Id, &graph.Circle{})
		item.Data = group
		item.Style = graph.Style{Fill: c.colors[group.Id], Stroke: StrokeColor}

		graph.NewInteractiveDecorator(ctx, item, c.view)
		graph.NewAutoFitTextDecorator(ctx, item, group.Name, TextLightColor)

		c.layer.AddItem(item)
		c.surround = append(c.surround, item)
	}

	c.daily = graph.NewItem(ItemDaily, &graph.Rectangle{})
	c.daily.Style = graph.Style{Fill: ProgressTrackColor}
	c.sections = graph.NewSectionProgressDecorator(ctx, c.daily)
	c.sections.ScaleColor = ScaleColor
	c.sections.FontSize = 12
	c.sections.Scales = []graph.ProgressScale{
		{Pct: 0, Text: "0:00"},
		{Pct: 0.25, Text: "6:00"},
		{Pct: 0.5, Text: "12:00"},
		{Pct: 0.75, Text: "18:00"},
		{Pct: 1, Text: "24:00"},
	}
	c.layer.AddItem(c.daily)

	c.statistics = graph.NewItem(ItemStatistics, &graph.Rectangle{})
	c.statsBars = graph.NewStatisticsBarDecorator(ctx, c.statistics)
	c.statsBars.DefaultMax = 60
	c.statsBars.EmptyColor = StatisticsEmptyColor
	c.statsBars.Formatter = c.formatBar
	graph.NewClickDecorator(ctx, c.statistics, c.view)
	c.layer.AddItem(c.statistics)

	c.progress = graph.NewItem(ItemProgress, &graph.ProgressBar{})
	c.progress.Style = graph.Style{Fill: ProgressColor, Stroke: ProgressTrackColor}

	current, _ := c.tasks.Current()

	c.center = graph.NewItem(ItemCenter, &graph.Circle{})
	c.center.Style = graph.Style{Fill: c.colors[current.GroupId], Stroke: StrokeColor}

	// the long press sees the select first, the drag still starts
	c.longPress = graph.NewLongPressDecorator(ctx, c.center, c.progress, c.abandonDistance, c.view)
	graph.NewInteractiveDecorator(ctx, c.center, c.view)
	c.clock = graph.NewAutoFitTextDecorator(ctx, c.center, "", TextLightColor)

	c.layer.AddItem(c.center)
	c.layer.AddItem(c.progress)
}

// Poll updates the clock and the daily statistics once per second.
func (c *TimeViewController) Poll(now time.Time) {
	if now.Truncate(time.Second).Equal(c.lastPoll) {
		return
	}

	c.lastPoll = now.Truncate(time.Second)

	c.clock.Text = now.Format("15:04:05")
	c.updateStatistics(now)

	c.view.Refresh()
}

func (c *TimeViewController) updateStatistics(now time.Time) {
	dayStart, dayEnd := dayOf(now)
	dayLength := dayEnd.Sub(dayStart)

	pctOf := func(t time.Time) float64 {
		return float64(t.Sub(dayStart)) / float64(dayLength)
	}

	c.sections.Sections = nil
	for _, span := range c.tasks.Spans(dayStart, now) {
		c.sections.AddSection(pctOf(span.Start), c.colors[span.GroupId])
	}

	c.sections.End = pctOf(now)

	totals := c.tasks.Totals(dayStart, now)

	c.statsBars.Bars = nil
	for _, group := range c.groups {
		c.statsBars.Bars = append(c.statsBars.Bars, graph.StatisticsBar{
			Text:      group.Name,
			Value:     totals[group.Id].Minutes(),
			BarColor:  c.colors[group.Id],
			TextColor: ScaleColor,
		})
	}
}

func (c *TimeViewController) formatBar(bar graph.StatisticsBar) string {
	if !c.showShares {
		duration := time.Duration(bar.Value * float64(time.Minute)).Truncate(time.Minute)
		return fmt.Sprintf("%s %s", bar.Text, formatMinutes(duration))
	}

	var sum float64
	for _, other := range c.statsBars.Bars {
		sum += other.Value
	}

	if sum <= 0 {
		return fmt.Sprintf("%s 0%%", bar.Text)
	}

	return fmt.Sprintf("%s %d%%", bar.Text, int(math.Round(bar.Value/sum*100)))
}

func formatMinutes(duration time.Duration) string {
	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60
	return fmt.Sprintf("%d:%02d", hours, minutes)
}

// SwitchTask makes the group the current task.
func (c *TimeViewController) SwitchTask(group config.TaskGroup) {
	now := c.view.Context().Now()

	record := c.tasks.Switch(group.Id, now)
	c.logger.Info("Switched task", "group", group.Name, "task", record.TaskId)

	c.center.Style.Fill = c.colors[group.Id]
	c.updateStatistics(now)
	c.view.Refresh()
}

func (c *TimeViewController) snapBack(item *graph.Item) {
	from := item.Offset
	if from == (Vec{}) {
		return
	}

	c.view.Tweens().Set(item.Id, &tween.Simple{
		Duration: snapBackDuration,
		Ease:     ease.OutCubic,
		Target: func(f float64, _, _ time.Duration) {
			item.Offset = from.Mulf(1 - f)
		},
	})
}

func (c *TimeViewController) OnViewSizeChanged(width, height, oldWidth, oldHeight int) {
	unit := c.view.UnitScale()

	for _, item := range c.surround {
		item.Style.StrokeWidth = float32(unit)
	}

	c.center.Style.StrokeWidth = float32(unit)
	c.longPress.AbandonOffset = c.abandonDistance * unit
}

func (c *TimeViewController) OnItemLayout() {
	area := c.view.PaintArea()
	unit := c.view.UnitScale()

	if c.view.IsPortrait() {
		// circles centered a bit below the middle, statistics above them
		circles := translate(area, Vec{Y: 10 * unit})
		c.layoutCircles(circles, unit)

		top := circles.Center().Y - circles.Width()/2

		panel := Rect{
			Min: Vec{X: area.Min.X + 5*unit, Y: area.Min.Y + 8*unit},
			Max: Vec{X: area.Max.X - 5*unit, Y: top},
		}

		c.layoutPanel(panel, unit)
	} else {
		// circles on the left, statistics on the right
		circles := Rect{Min: area.Min, Max: Vec{X: area.Min.X + area.Height(), Y: area.Max.Y}}
		c.layoutCircles(circles, unit)

		panel := Rect{
			Min: Vec{X: circles.Max.X + 5*unit, Y: area.Min.Y + 8*unit},
			Max: Vec{X: area.Max.X - 5*unit, Y: area.Max.Y - 8*unit},
		}

		c.layoutPanel(panel, unit)
	}

	c.view.Refresh()
}

func (c *TimeViewController) layoutCircles(area Rect, unit float64) {
	centerRadius := 12 * unit
	surroundRadius := 8 * unit

	center := area.Center()
	radius := area.Width()/2 - surroundRadius

	centerShape := c.center.Shape.(*graph.Circle)
	centerShape.Origin = center
	centerShape.Radius = centerRadius

	progress := c.progress.Shape.(*graph.ProgressBar)
	progress.Rect = Rect{
		Min: Vec{X: center.X - centerRadius, Y: center.Y + centerRadius + 2*unit},
		Max: Vec{X: center.X + centerRadius, Y: center.Y + centerRadius + 4*unit},
	}

	// relax sits below the center, the others are spread over the upper half
	var others []*graph.Item
	for _, item := range c.surround {
		if item.Id == config.GroupIdRelax {
			shape := item.Shape.(*graph.Circle)
			shape.Origin = pointByAngle(center, radius, 90)
			shape.Radius = surroundRadius
			continue
		}

		others = append(others, item)
	}

	points := circumferencePoints(center, radius, 180, 360, len(others))
	for idx, item := range others {
		shape := item.Shape.(*graph.Circle)
		shape.Origin = points[idx]
		shape.Radius = surroundRadius
	}
}

func (c *TimeViewController) layoutPanel(area Rect, unit float64) {
	barHeight := 4 * unit

	daily := c.daily.Shape.(*graph.Rectangle)
	daily.Rect = Rect{
		Min: Vec{X: area.Min.X, Y: area.Min.Y},
		Max: Vec{X: area.Max.X, Y: area.Min.Y + barHeight},
	}

	stats := c.statistics.Shape.(*graph.Rectangle)
	stats.Rect = Rect{
		Min: Vec{X: area.Min.X, Y: daily.Rect.Max.Y + 4*unit},
		Max: Vec{X: area.Max.X, Y: max(daily.Rect.Max.Y+4*unit, area.Max.Y-4*unit)},
	}
}

func (c *TimeViewController) OnItemSelected(item *graph.Item) {
	// picking up an item that is still snapping back
	c.view.Tweens().Cancel(item.Id)
}

func (c *TimeViewController) OnItemDragging(item *graph.Item, intersecting []*graph.Item) {
}

func (c *TimeViewController) OnItemDropped(item *graph.Item, intersecting []*graph.Item) {
	defer c.snapBack(item)

	if item == c.center {
		// center dropped onto a group
		if group, ok := firstGroup(intersecting); ok {
			c.SwitchTask(group)
		}

		return
	}

	group, ok := item.Data.(config.TaskGroup)
	if !ok {
		return
	}

	// group dropped onto the center
	for _, other := range intersecting {
		if other == c.center {
			c.SwitchTask(group)
			return
		}
	}
}

func (c *TimeViewController) OnItemClicked(item *graph.Item) {
	if item == c.statistics {
		c.showShares = !c.showShares
		c.view.Refresh()
	}
}

func (c *TimeViewController) OnItemTriggered(item *graph.Item) {
	if item != c.center {
		return
	}

	c.logger.Debug("Center triggered, recording voice note")

	c.record.TakeControl()

	// the center lost its tracking to the record layer
	c.snapBack(c.center)
}

func firstGroup(items []*graph.Item) (config.TaskGroup, bool) {
	for _, item := range items {
		if group, ok := item.Data.(config.TaskGroup); ok {
			return group, true
		}
	}

	return config.TaskGroup{}, false
}

func translate(r Rect, offset Vec) Rect {
	return Rect{Min: r.Min.Add(offset), Max: r.Max.Add(offset)}
}

// circumferencePoints spreads count points evenly between the two angles
// given in degrees, both ends included.
func circumferencePoints(origin Vec, radius float64, startAngle, endAngle float64, count int) []Vec {
	switch {
	case count <= 0:
		return nil

	case count == 1:
		return []Vec{pointByAngle(origin, radius, (startAngle+endAngle)/2)}
	}

	unitAngle := (endAngle - startAngle) / float64(count-1)

	points := make([]Vec, 0, count)
	for idx := range count {
		points = append(points, pointByAngle(origin, radius, startAngle+float64(idx)*unitAngle))
	}

	return points
}

func pointByAngle(origin Vec, radius float64, angle float64) Vec {
	radian := angle * math.Pi / 180
	return Vec{
		X: origin.X + radius*math.Cos(radian),
		Y: origin.Y + radius*math.Sin(radian),
	}
}
