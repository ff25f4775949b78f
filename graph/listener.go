package graph

import "reflect"

// Listener is notified about the interaction with decorated items. All calls
// are synchronous. Decorators accept a nil Listener, a nil pointer wrapped in
// the interface counts as nil too.
type Listener interface {
	OnItemSelected(item *Item)
	OnItemDragging(item *Item, intersecting []*Item)
	OnItemDropped(item *Item, intersecting []*Item)
	OnItemClicked(item *Item)
	OnItemTriggered(item *Item)
}

// ListenerFuncs implements Listener with optional functions.
type ListenerFuncs struct {
	Selected  func(item *Item)
	Dragging  func(item *Item, intersecting []*Item)
	Dropped   func(item *Item, intersecting []*Item)
	Clicked   func(item *Item)
	Triggered func(item *Item)
}

func (l ListenerFuncs) OnItemSelected(item *Item) {
	if l.Selected != nil {
		l.Selected(item)
	}
}

func (l ListenerFuncs) OnItemDragging(item *Item, intersecting []*Item) {
	if l.Dragging != nil {
		l.Dragging(item, intersecting)
	}
}

func (l ListenerFuncs) OnItemDropped(item *Item, intersecting []*Item) {
	if l.Dropped != nil {
		l.Dropped(item, intersecting)
	}
}

func (l ListenerFuncs) OnItemClicked(item *Item) {
	if l.Clicked != nil {
		l.Clicked(item)
	}
}

func (l ListenerFuncs) OnItemTriggered(item *Item) {
	if l.Triggered != nil {
		l.Triggered(item)
	}
}

// hasListener reports whether the listener can be called.
func hasListener(l Listener) bool {
	if l == nil {
		return false
	}

	value := reflect.ValueOf(l)
	switch value.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan, reflect.Interface:
		return !value.IsNil()
	}

	return true
}
