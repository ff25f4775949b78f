package graph

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gmath"
)

// Shape is the base geometry of an item. Bounds returns the resting bounds,
// before the drag offset and the inflation of the item are applied.
type Shape interface {
	Bounds() gmath.Rect
	Draw(target *ebiten.Image, bounds gmath.Rect, style *Style)
}

type Style struct {
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float32
}

type Circle struct {
	Origin gmath.Vec
	Radius float64
}

func (c *Circle) Bounds() gmath.Rect {
	return gmath.Rect{
		Min: c.Origin.Sub(splatVec(c.Radius)),
		Max: c.Origin.Add(splatVec(c.Radius)),
	}
}

func (c *Circle) Draw(target *ebiten.Image, bounds gmath.Rect, style *Style) {
	center := bounds.Center()
	radius := bounds.Width() / 2

	if style.Fill != nil {
		DrawFillCircle(target, center, radius, style.Fill)
	}

	if style.Stroke != nil && style.StrokeWidth > 0 {
		c32 := center.AsVec32()
		vector.StrokeCircle(target, c32.X, c32.Y, float32(radius), style.StrokeWidth, style.Stroke, true)
	}
}

type Rectangle struct {
	Rect gmath.Rect

	// radius of the rounded corners, zero for sharp corners
	CornerRadius float64
}

func (r *Rectangle) Bounds() gmath.Rect {
	return r.Rect
}

func (r *Rectangle) Draw(target *ebiten.Image, bounds gmath.Rect, style *Style) {
	if style.Fill != nil {
		if r.CornerRadius > 0 {
			DrawRoundRect(target, bounds.Min, bounds.Size(), r.CornerRadius, style.Fill)
		} else {
			drawRect(target, bounds, style.Fill)
		}
	}

	if style.Stroke != nil && style.StrokeWidth > 0 {
		min32, size32 := bounds.Min.AsVec32(), bounds.Size().AsVec32()
		vector.StrokeRect(target, min32.X, min32.Y, size32.X, size32.Y, style.StrokeWidth, style.Stroke, true)
	}
}

// ProgressBar is a horizontal bar. The stroke color paints the track, the
// fill color the part up to Progress (0 to 1).
type ProgressBar struct {
	Rect     gmath.Rect
	Progress float64
}

func (p *ProgressBar) Bounds() gmath.Rect {
	return p.Rect
}

func (p *ProgressBar) Draw(target *ebiten.Image, bounds gmath.Rect, style *Style) {
	if style.Stroke != nil {
		drawRect(target, bounds, style.Stroke)
	}

	progress := min(max(p.Progress, 0), 1)
	if style.Fill != nil && progress > 0 {
		filled := bounds
		filled.Max.X = filled.Min.X + bounds.Width()*progress
		drawRect(target, filled, style.Fill)
	}
}

func drawRect(target *ebiten.Image, rect gmath.Rect, c color.Color) {
	min32, size32 := rect.Min.AsVec32(), rect.Size().AsVec32()
	vector.DrawFilledRect(target, min32.X, min32.Y, size32.X, size32.Y, c, true)
}
