package graph

import (
	"github.com/quasilyte/gmath"
)

// Intersects reports whether the two rectangles overlap. Rectangles that
// only touch at an edge do not intersect.
func Intersects(a, b gmath.Rect) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

// InflateRect grows the rectangle around its center by pct percent of its size.
func InflateRect(r gmath.Rect, pct float64) gmath.Rect {
	if pct == 0 {
		return r
	}

	grow := gmath.Vec{X: r.Width() * pct / 200, Y: r.Height() * pct / 200}
	return gmath.Rect{Min: r.Min.Sub(grow), Max: r.Max.Add(grow)}
}

// ScaleRect scales the rectangle around its center by the given factor.
func ScaleRect(r gmath.Rect, factor float64) gmath.Rect {
	center := r.Center()
	half := gmath.Vec{X: r.Width() * factor / 2, Y: r.Height() * factor / 2}
	return gmath.Rect{Min: center.Sub(half), Max: center.Add(half)}
}

func translateRect(r gmath.Rect, offset gmath.Vec) gmath.Rect {
	return gmath.Rect{Min: r.Min.Add(offset), Max: r.Max.Add(offset)}
}

func rectOf(x0, y0, x1, y1 float64) gmath.Rect {
	return gmath.Rect{Min: gmath.Vec{X: x0, Y: y0}, Max: gmath.Vec{X: x1, Y: y1}}
}
