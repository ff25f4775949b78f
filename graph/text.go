package graph

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gmath"
)

// size of the text area relative to the bounds of the item
const textAreaFactor = 0.7

// AutoFitTextDecorator paints a single line of text centered on the item,
// sized to fit into the inner part of its bounds.
type AutoFitTextDecorator struct {
	NopPaint
	decorated

	Text  string
	Color color.Color

	// cached layout, recalculated when the area or the text length changes
	area     gmath.Rect
	textLen  int
	fontSize float64
}

func NewAutoFitTextDecorator(ctx *Context, item *Item, text string, c color.Color) *AutoFitTextDecorator {
	d := &AutoFitTextDecorator{
		decorated: decorated{ctx: ctx, item: item},
		Text:      text,
		Color:     c,
		textLen:   -1,
	}

	item.Decorate(d)
	return d
}

func (d *AutoFitTextDecorator) PaintAfter(target *ebiten.Image) {
	if d.Text == "" {
		return
	}

	area, fontSize := d.Layout()
	if fontSize <= 0 {
		return
	}

	c := d.Color
	if c == nil {
		c = color.White
	}

	DrawTextCenter(target, d.Text, FontFace(fontSize), area.Center(), c)
}

// Layout returns the text area and the font size that fits the text into it.
func (d *AutoFitTextDecorator) Layout() (gmath.Rect, float64) {
	area := ScaleRect(d.decoratedItem().BoundRect(), textAreaFactor)

	if area != d.area || len(d.Text) != d.textLen {
		d.area = area
		d.textLen = len(d.Text)
		d.fontSize = FitFontSize(d.Text, gmath.Vec{X: area.Width(), Y: area.Height()})
	}

	return d.area, d.fontSize
}

// FitFontSize calculates the largest font size for which the text fits into
// the given size.
func FitFontSize(text string, size gmath.Vec) float64 {
	if text == "" || size.X <= 0 || size.Y <= 0 {
		return 0
	}

	// measure at a reference size, text extent scales linearly
	const reference = 100.0
	measured := MeasureText(FontFace(reference), text)
	if measured.X <= 0 || measured.Y <= 0 {
		return 0
	}

	scale := min(size.X/measured.X, size.Y/measured.Y)
	return reference * scale
}
