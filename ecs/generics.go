package ecs

import "github.com/mossling/clamber/ecs/component"

// Components are stored as pointers so ForEach callbacks can mutate in
// place without a write-back call.

func Add[T any](w *World, e Entity, h component.ComponentHandle[T], v *T) error {
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if v == nil {
		return component.ErrNilComponent
	}
	w.store(h.ID()).set(e.id(), v)
	return nil
}

func Get[T any](w *World, e Entity, h component.ComponentHandle[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v := w.store(h.ID()).get(e.id())
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

func Has[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	return w.IsAlive(e) && w.store(h.ID()).has(e.id())
}

func Remove[T any](w *World, e Entity, h component.ComponentHandle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(h.ID()).remove(e.id())
}

func ForEach[T any](w *World, h component.ComponentHandle[T], fn func(Entity, *T)) {
	s := w.store(h.ID())
	for i, id := range s.denseIDs {
		if v, ok := s.denseValues[i].(*T); ok {
			fn(makeEntity(id, w.gens[id-1]), v)
		}
	}
}

func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	sa := w.store(ha.ID())
	sb := w.store(hb.ID())
	for i, id := range sa.denseIDs {
		if !sb.has(id) {
			continue
		}
		a, okA := sa.denseValues[i].(*A)
		b, okB := sb.get(id).(*B)
		if okA && okB {
			fn(makeEntity(id, w.gens[id-1]), a, b)
		}
	}
}
