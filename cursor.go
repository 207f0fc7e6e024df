package depot

import (
	"iter"
)

// Each scans every live entity and yields those matching filter. Unlike a
// system it keeps no cache, so it suits one-off lookups.
//
// Structural changes during iteration are rejected while the world is
// locked; callers iterating outside Tick must not add or remove components
// on the yielded entities.
func (w *World) Each(filter Filter) (iter.Seq[Entity], error) {
	required, excluded, err := filter.compile(w.components)
	if err != nil {
		return nil, err
	}
	return func(yield func(Entity) bool) {
		for e := range w.entities.each() {
			if !matches(w.entities.signature(e), required, excluded) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}, nil
}

// Count returns the number of live entities matching filter.
func (w *World) Count(filter Filter) (int, error) {
	seq, err := w.Each(filter)
	if err != nil {
		return 0, err
	}
	n := 0
	for range seq {
		n++
	}
	return n, nil
}
