package graph

import (
	"fmt"
)

// DropRouter decides what a drop means. Dropping onto nothing is a plain
// release, otherwise the first intersecting item selects the target handler.
// A drop onto an item without handler is a configuration error and panics.
type DropRouter struct {
	OnRelease func(dropped *Item)
	Targets   map[string]func(dropped, target *Item)
}

func (r *DropRouter) Handle(targetId string, handler func(dropped, target *Item)) {
	if r.Targets == nil {
		r.Targets = map[string]func(dropped, target *Item){}
	}

	r.Targets[targetId] = handler
}

func (r *DropRouter) Resolve(dropped *Item, intersecting []*Item) {
	if len(intersecting) == 0 {
		if r.OnRelease != nil {
			r.OnRelease(dropped)
		}

		return
	}

	target := intersecting[0]

	handler, ok := r.Targets[target.Id]
	if !ok {
		panic(fmt.Sprintf("graph: %s dropped onto unexpected target %s", dropped, target))
	}

	if handler != nil {
		handler(dropped, target)
	}
}
