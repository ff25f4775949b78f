package graph

import (
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gmath"
)

// Layer is an ordered collection of items. Items later in the sequence are
// painted on top and hit first.
type Layer struct {
	Id      string
	Visible bool

	// filled over the whole target before painting the items, nil for none
	Background color.Color

	items []*Item
}

func NewLayer(id string, visible bool) *Layer {
	return &Layer{Id: id, Visible: visible}
}

func (l *Layer) SetBackgroundAlpha(alpha uint8) {
	base := l.Background
	if base == nil {
		base = color.Black
	}

	l.Background = WithAlpha(base, alpha)
}

func (l *Layer) AddItem(item *Item) {
	if item == nil {
		panic("graph: item must not be nil")
	}

	item.layer = l
	l.items = append(l.items, item)
}

// RemoveItems removes all items matching the predicate and returns the
// number of removed items.
func (l *Layer) RemoveItems(pred func(item *Item) bool) int {
	count := len(l.items)

	l.items = slices.DeleteFunc(l.items, func(item *Item) bool {
		if pred(item) {
			item.layer = nil
			return true
		}

		return false
	})

	return count - len(l.items)
}

// Items returns the visible items matching the predicate in painting order.
// A nil predicate matches all visible items.
func (l *Layer) Items(pred func(item *Item) bool) []*Item {
	var items []*Item
	for _, item := range l.items {
		if !item.Visible {
			continue
		}

		if pred == nil || pred(item) {
			items = append(items, item)
		}
	}

	return items
}

// FirstItem returns the first item in painting order matching the predicate,
// visible or not.
func (l *Layer) FirstItem(pred func(item *Item) bool) *Item {
	for _, item := range l.items {
		if pred(item) {
			return item
		}
	}

	return nil
}

func (l *Layer) Len() int {
	return len(l.items)
}

// ItemsIntersecting returns the visible items whose bounds overlap the
// rectangle, in painting order. The predicate can exclude further items,
// e.g. the one being dropped.
func (l *Layer) ItemsIntersecting(rect gmath.Rect, pred func(item *Item) bool) []*Item {
	var items []*Item
	for _, item := range l.items {
		if !item.Visible || (pred != nil && !pred(item)) {
			continue
		}

		if Intersects(item.BoundRect(), rect) {
			items = append(items, item)
		}
	}

	return items
}

// ItemsAt returns the visible items containing the position, topmost first.
func (l *Layer) ItemsAt(pos gmath.Vec) []*Item {
	var items []*Item
	for _, item := range slices.Backward(l.items) {
		if item.Visible && item.Contains(pos) {
			items = append(items, item)
		}
	}

	return items
}

// BringToFront moves the item to the end of the sequence.
func (l *Layer) BringToFront(item *Item) {
	idx := slices.Index(l.items, item)
	if idx < 0 || idx == len(l.items)-1 {
		return
	}

	l.items = append(slices.Delete(l.items, idx, idx+1), item)
}

func (l *Layer) Draw(target *ebiten.Image) {
	if !l.Visible {
		return
	}

	if l.Background != nil {
		drawRect(target, rectOf(0, 0, float64(target.Bounds().Dx()), float64(target.Bounds().Dy())), l.Background)
	}

	for _, item := range l.items {
		item.Draw(target)
	}
}
