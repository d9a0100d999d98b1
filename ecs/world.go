package ecs

import "github.com/mossling/clamber/ecs/component"

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// World owns entities, component stores, and the system update order.
// Everything here is single-threaded and step-driven: one Update call per
// fixed tick, systems run in registration order, events flush at the end.
type World struct {
	nextID entityID
	gens   []generation
	free   []entityID

	stores map[component.ComponentID]*sparseSet

	systems []System
	events  EventQueue
}

func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

func (w *World) CreateEntity() Entity {
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.nextID++
		id = w.nextID
		w.gens = append(w.gens, 0)
	}
	return makeEntity(id, w.gens[id-1])
}

func (w *World) DestroyEntity(e Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	id := e.id()
	for _, store := range w.stores {
		store.remove(id)
	}
	w.gens[id-1]++
	w.free = append(w.free, id)
	return true
}

func (w *World) IsAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(w.gens) {
		return false
	}
	return w.gens[id-1] == e.generation()
}

func (w *World) store(id component.ComponentID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

// Query returns every alive entity holding all of the given component kinds.
// Iteration starts from the smallest store.
func (w *World) Query(first component.ComponentID, rest ...component.ComponentID) []Entity {
	ids := append([]component.ComponentID{first}, rest...)
	smallest := w.store(ids[0])
	for _, id := range ids[1:] {
		if s := w.store(id); s.len() < smallest.len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.len())
outer:
	for _, id := range smallest.denseIDs {
		for _, cid := range ids {
			if !w.store(cid).has(id) {
				continue outer
			}
		}
		e := makeEntity(id, w.gens[id-1])
		out = append(out, e)
	}
	return out
}

// First returns an arbitrary entity holding the component kind, typically
// used for singletons like the player.
func (w *World) First(id component.ComponentID) (Entity, bool) {
	s := w.store(id)
	if s.len() == 0 {
		return 0, false
	}
	eid := s.denseIDs[0]
	return makeEntity(eid, w.gens[eid-1]), true
}

func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once and flushes the event queue.
func (w *World) Update() {
	for _, s := range w.systems {
		s.Update(w)
	}
	w.events.flush()
}

func (w *World) Events() *EventQueue {
	return &w.events
}
