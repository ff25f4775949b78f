package graph

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/quasilyte/gmath"
)

type StatisticsBar struct {
	Text      string
	Value     float64
	BarColor  color.Color
	TextColor color.Color
}

type StatisticsRow struct {
	Full gmath.Rect
	Bar  gmath.Rect
	Text gmath.Rect

	Label string
}

// StatisticsBarDecorator paints horizontal bars stacked from top to bottom
// over the bounds of the item. The bars use RightLimitPct of the width, the
// rest holds the text of each bar. The full bar length represents the largest
// value, but at least DefaultMax.
type StatisticsBarDecorator struct {
	NopPaint
	decorated

	Bars          []StatisticsBar
	DefaultMax    float64
	RightLimitPct float64
	EmptyColor    color.Color

	// Formatter returns the text shown for a bar, defaults to its Text
	Formatter func(bar StatisticsBar) string
}

func NewStatisticsBarDecorator(ctx *Context, item *Item) *StatisticsBarDecorator {
	d := &StatisticsBarDecorator{
		decorated:     decorated{ctx: ctx, item: item},
		DefaultMax:    100,
		RightLimitPct: 0.7,
		EmptyColor:    color.White,
	}

	item.Decorate(d)
	return d
}

// Rows calculates the layout of all bars.
func (d *StatisticsBarDecorator) Rows() []StatisticsRow {
	if len(d.Bars) == 0 {
		return nil
	}

	whole := d.decoratedItem().BoundRect()
	rowHeight := whole.Height() / float64(len(d.Bars))
	barLimit := d.RightLimitPct * whole.Width()

	maxValue := d.DefaultMax
	for _, bar := range d.Bars {
		maxValue = max(maxValue, bar.Value)
	}

	rows := make([]StatisticsRow, 0, len(d.Bars))
	for idx, bar := range d.Bars {
		top := whole.Min.Y + float64(idx)*rowHeight
		bottom := top + rowHeight
		split := whole.Min.X + barLimit

		full := rectOf(whole.Min.X, top, split, bottom)

		filled := full
		if maxValue > 0 {
			filled.Max.X = full.Min.X + max(0, bar.Value)*barLimit/maxValue
		}

		rows = append(rows, StatisticsRow{
			Full:  full,
			Bar:   filled,
			Text:  rectOf(split, top, whole.Max.X, bottom),
			Label: d.format(bar),
		})
	}

	return rows
}

func (d *StatisticsBarDecorator) PaintAfter(target *ebiten.Image) {
	rows := d.Rows()

	for idx, row := range rows {
		bar := d.Bars[idx]

		drawRect(target, row.Full, d.EmptyColor)

		if row.Bar.Width() > 0 && bar.BarColor != nil {
			drawRect(target, row.Bar, bar.BarColor)
		}

		textColor := bar.TextColor
		if textColor == nil {
			textColor = color.Black
		}

		face := FontFace(row.Text.Height() * 0.6)
		pos := gmath.Vec{X: row.Text.Max.X, Y: row.Text.Center().Y}
		DrawText(target, row.Label, face, pos, textColor, text.AlignEnd, text.AlignCenter)
	}
}

func (d *StatisticsBarDecorator) format(bar StatisticsBar) string {
	if d.Formatter != nil {
		return d.Formatter(bar)
	}

	return bar.Text
}
