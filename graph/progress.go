package graph

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gmath"
)

type ProgressSection struct {
	// start of the section as fraction of the whole bar
	Pct   float64
	Color color.Color
}

type ProgressScale struct {
	Pct  float64
	Text string
}

type ProgressSegment struct {
	Rect  gmath.Rect
	Color color.Color
}

// SectionProgressDecorator paints a horizontal bar made of consecutive
// sections over the bounds of the item:
//
//	      Sections[0].Pct      Sections[1].Pct                 100%
//	|     |##################|************************|        |
//	                                                  End
//
// Nothing is painted before the first section or after End. Scale marks
// with a label are painted above the bar.
type SectionProgressDecorator struct {
	NopPaint
	decorated

	Sections []ProgressSection
	End      float64
	Scales   []ProgressScale

	FontSize   float64
	ScaleColor color.Color
}

func NewSectionProgressDecorator(ctx *Context, item *Item) *SectionProgressDecorator {
	d := &SectionProgressDecorator{
		decorated:  decorated{ctx: ctx, item: item},
		FontSize:   16,
		ScaleColor: color.Black,
	}

	item.Decorate(d)
	return d
}

// AddSection starts a new section at the given fraction. The end of the
// bar is moved along.
func (d *SectionProgressDecorator) AddSection(pct float64, c color.Color) {
	d.Sections = append(d.Sections, ProgressSection{Pct: pct, Color: c})
	d.End = max(d.End, pct)
}

// Segments returns the rectangles to fill for the sections.
func (d *SectionProgressDecorator) Segments() []ProgressSegment {
	whole := d.decoratedItem().BoundRect()

	var segments []ProgressSegment
	for idx, section := range d.Sections {
		end := d.End
		if idx < len(d.Sections)-1 {
			end = d.Sections[idx+1].Pct
		}

		rect := whole
		rect.Min.X = d.pctToX(whole, section.Pct)
		rect.Max.X = d.pctToX(whole, end)

		segments = append(segments, ProgressSegment{Rect: rect, Color: section.Color})
	}

	return segments
}

func (d *SectionProgressDecorator) PaintAfter(target *ebiten.Image) {
	for _, segment := range d.Segments() {
		if segment.Rect.Width() > 0 {
			drawRect(target, segment.Rect, segment.Color)
		}
	}

	if len(d.Scales) == 0 {
		return
	}

	whole := d.item.BoundRect()
	face := FontFace(d.FontSize * d.ctx.UnitScale() / 4)
	tickLength := float32(d.ctx.UnitScale())

	for _, scale := range d.Scales {
		x := float32(d.pctToX(whole, scale.Pct))
		top := float32(whole.Min.Y)

		vector.StrokeLine(target, x, top, x, top-tickLength, 2, d.ScaleColor, true)

		textSize := MeasureText(face, scale.Text)
		pos := gmath.Vec{X: float64(x), Y: float64(top-tickLength) - textSize.Y/2}
		DrawTextCenter(target, scale.Text, face, pos, d.ScaleColor)
	}
}

func (d *SectionProgressDecorator) pctToX(whole gmath.Rect, pct float64) float64 {
	return whole.Min.X + pct*whole.Width()
}
