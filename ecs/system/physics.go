package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/mossling/clamber/common"
	"github.com/mossling/clamber/config"
	"github.com/mossling/clamber/ecs"
	"github.com/mossling/clamber/ecs/component"
)

// Shape filter categories. Probes query against the environment category
// only, so an actor's own shapes never read as contact.
const (
	CategoryEnvironment uint = 1 << 0
	CategoryPlayer      uint = 1 << 1
)

var (
	environmentFilter = cp.ShapeFilter{Group: cp.NO_GROUP, Categories: CategoryEnvironment, Mask: CategoryPlayer}
	playerFilter      = cp.ShapeFilter{Group: cp.NO_GROUP, Categories: CategoryPlayer, Mask: CategoryEnvironment}

	// ProbeFilter is what contact sweeps carry: it matches environment
	// shapes and nothing else.
	ProbeFilter = cp.ShapeFilter{Group: cp.NO_GROUP, Categories: CategoryPlayer, Mask: CategoryEnvironment}
)

// PhysicsSystem owns the Chipmunk space: static environment shapes built
// once from the level's merged solids, dynamic bodies for entities carrying
// PhysicsBody, and the fixed step. Coordinates are screen-down, so gravity
// is positive Y.
type PhysicsSystem struct {
	cfg    *config.Store
	space  *cp.Space
	bodies map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body  *cp.Body
	shape *cp.Shape
}

func NewPhysicsSystem(cfg *config.Store, solids []common.Rect) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Get().Physics.Gravity})

	for _, r := range solids {
		bb := cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}
		shape := cp.NewBox2(space.StaticBody, bb, 0)
		shape.SetFriction(0.8)
		shape.SetFilter(environmentFilter)
		space.AddShape(shape)
	}

	return &PhysicsSystem{
		cfg:    cfg,
		space:  space,
		bodies: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	// Gravity follows the live tuning so hot reload takes effect.
	ps.space.SetGravity(cp.Vector{X: 0, Y: ps.cfg.Get().Physics.Gravity})

	ps.cleanup(w)
	ps.ensureBodies(w)

	ps.space.Step(common.FixedDt)

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) ensureBodies(w *ecs.World) {
	for _, e := range w.Query(component.PhysicsBodyComponent.ID(), component.TransformComponent.ID()) {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok || bodyComp.Static || bodyComp.Body != nil {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		width := bodyComp.Width
		height := bodyComp.Height
		if width <= 0 || height <= 0 {
			width, height = common.TileSize, common.TileSize
		}
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}

		// Infinite moment keeps the actor upright without angle clamping.
		body := cp.NewBody(mass, math.Inf(1))
		body.SetPosition(cp.Vector{X: transform.X + width/2, Y: transform.Y + height/2})

		shape := cp.NewBox(body, width, height, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetFilter(playerFilter)

		// While climbing, vertical velocity is a direct command each tick;
		// gravity must not erode it between command and integration.
		if loco, ok := ecs.Get(w, e, component.LocomotionComponent); ok {
			body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
				if loco.Climbing {
					cp.BodyUpdateVelocity(b, cp.Vector{}, damping, dt)
					return
				}
				cp.BodyUpdateVelocity(b, gravity, damping, dt)
			})
		}

		ps.space.AddBody(body)
		ps.space.AddShape(shape)
		ps.bodies[e] = &bodyInfo{body: body, shape: shape}

		bodyComp.Body = body
		bodyComp.Shape = shape
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.bodies {
		if !w.IsAlive(e) {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X - bodyComp.Width/2
		transform.Y = pos.Y - bodyComp.Height/2
	}
}

func (ps *PhysicsSystem) cleanup(w *ecs.World) {
	for e, info := range ps.bodies {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.bodies, e)
	}
}
