package system

import (
	"github.com/jakecoffman/cp"

	"github.com/mossling/clamber/config"
	"github.com/mossling/clamber/ecs"
	"github.com/mossling/clamber/ecs/component"
)

// Probe boxes are inset along their cross axis so the ground sweep can't
// clip a wall and the wall sweep can't clip the floor.
const probeInset = 4.0

// ContactProbeSystem refreshes the three contact flags every tick: one
// short box sweep of the actor's collider per direction, all three taken
// from the same bounding-box snapshot. The lateral sweep follows facing,
// not movement input: wall contact is checked toward the side the actor
// looks even when it is standing still.
type ContactProbeSystem struct {
	cfg     *config.Store
	physics *PhysicsSystem
}

func NewContactProbeSystem(cfg *config.Store, physics *PhysicsSystem) *ContactProbeSystem {
	return &ContactProbeSystem{cfg: cfg, physics: physics}
}

func (s *ContactProbeSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.physics == nil {
		return
	}
	space := s.physics.Space()
	if space == nil {
		return
	}
	probe := s.cfg.Get().Probe

	for _, e := range w.Query(component.ContactComponent.ID(), component.PhysicsBodyComponent.ID(), component.LocomotionComponent.ID()) {
		contact, ok := ecs.Get(w, e, component.ContactComponent)
		if !ok {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		loco, okLoco := ecs.Get(w, e, component.LocomotionComponent)
		if !ok || !okLoco || bodyComp.Shape == nil {
			// No body yet: a valid steady state, not a fault. All flags
			// read false until physics has built the collider.
			s.publish(w, e, contact, component.Contact{})
			continue
		}

		// One snapshot for all three sweeps.
		bb := bodyComp.Shape.BB()

		next := component.Contact{
			Grounded:  s.sweep(space, groundProbeBB(bb, probe.GroundDistance)),
			OnWall:    s.sweep(space, wallProbeBB(bb, probe.WallDistance, loco.FacingLeft)),
			OnCeiling: s.sweep(space, ceilingProbeBB(bb, probe.CeilingDistance)),
		}
		s.publish(w, e, contact, next)
	}
}

// sweep reports whether any environment shape overlaps the probe box.
// Multiple hits collapse to the single boolean; per-hit detail is not part
// of the contract.
func (s *ContactProbeSystem) sweep(space *cp.Space, bb cp.BB) bool {
	hit := false
	space.BBQuery(bb, ProbeFilter, func(shape *cp.Shape, _ interface{}) {
		hit = true
	}, nil)
	return hit
}

// publish overwrites the contact snapshot wholesale and notifies the
// presentation layer of each changed flag. Fire-and-forget: nobody acks.
func (s *ContactProbeSystem) publish(w *ecs.World, e ecs.Entity, contact *component.Contact, next component.Contact) {
	prev := *contact
	*contact = next

	flags := []struct {
		flag       ecs.ContactFlag
		prev, next bool
	}{
		{ecs.ContactGrounded, prev.Grounded, next.Grounded},
		{ecs.ContactOnWall, prev.OnWall, next.OnWall},
		{ecs.ContactOnCeiling, prev.OnCeiling, next.OnCeiling},
	}
	for _, f := range flags {
		if f.prev == f.next {
			continue
		}
		w.Events().Push(ecs.Event{Type: ecs.EventTypeContact, Data: ecs.ContactEvent{
			Entity: e,
			Flag:   f.flag,
			Value:  f.next,
		}})
	}
}

// Screen-down coordinates: BB.B is the numeric minimum (the actor's top),
// BB.T the maximum (the feet).

func groundProbeBB(bb cp.BB, dist float64) cp.BB {
	return cp.BB{L: bb.L + probeInset, B: bb.T, R: bb.R - probeInset, T: bb.T + dist}
}

func ceilingProbeBB(bb cp.BB, dist float64) cp.BB {
	return cp.BB{L: bb.L + probeInset, B: bb.B - dist, R: bb.R - probeInset, T: bb.B}
}

func wallProbeBB(bb cp.BB, dist float64, facingLeft bool) cp.BB {
	if facingLeft {
		return cp.BB{L: bb.L - dist, B: bb.B + probeInset, R: bb.L, T: bb.T - probeInset}
	}
	return cp.BB{L: bb.R, B: bb.B + probeInset, R: bb.R + dist, T: bb.T - probeInset}
}
