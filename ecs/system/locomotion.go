package system

import (
	"github.com/mossling/clamber/config"
	"github.com/mossling/clamber/ecs"
	"github.com/mossling/clamber/ecs/component"
)

// LocomotionSystem turns contact flags, buffered input, and the action gate
// into velocity, facing, and mode, then assembles the per-tick AnimSignals
// snapshot for the presentation layer.
//
// Decisions are made in up-positive intent space (jump impulses and climb
// speeds are positive numbers); applying them to the screen-down physics
// body negates the vertical axis.
type LocomotionSystem struct {
	cfg *config.Store
}

func NewLocomotionSystem(cfg *config.Store) *LocomotionSystem {
	return &LocomotionSystem{cfg: cfg}
}

// decision is one tick's movement outcome. All fields are total functions
// of contact/input/gate; impossible combinations decide into no-ops.
type decision struct {
	VX float64

	// ClimbVY is a direct vertical velocity command, up-positive, valid
	// only while Climbing. It replaces gravity entirely for the tick.
	Climbing bool
	ClimbVY  float64

	// JumpVY is a one-shot vertical impulse, up-positive.
	JumpFired bool
	JumpVY    float64

	// WallJumpVX replaces horizontal velocity when a wall jump fires.
	WallJumpFired bool
	WallJumpVX    float64

	AttackRequested bool

	Mode component.Mode
}

func (s *LocomotionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	tun := s.cfg.Get()

	for _, e := range w.Query(
		component.PlayerTagComponent.ID(),
		component.LocomotionComponent.ID(),
		component.InputComponent.ID(),
		component.ContactComponent.ID(),
	) {
		loco, _ := ecs.Get(w, e, component.LocomotionComponent)
		input, _ := ecs.Get(w, e, component.InputComponent)
		contact, _ := ecs.Get(w, e, component.ContactComponent)
		if loco == nil || input == nil || contact == nil {
			continue
		}

		// The gate is polled once per decision, never cached across ticks.
		canAct := true
		if gate, ok := ecs.Get(w, e, component.ActionGateComponent); ok {
			canAct = gate.CanAct
		}

		d := decide(tun, loco, input, contact, canAct)

		verticalVelocity := s.apply(w, e, d)

		s.signals(w, e, loco, input, contact, d, verticalVelocity)
	}
}

// decide runs the transition rules in order: gate check, climb entry/exit,
// facing, speed selection, jump, attack. It mutates loco (facing, climb
// flag, mode) and consumes the one-shot input flags it acts on.
func decide(tun config.Tuning, loco *component.Locomotion, in *component.Input, contact *component.Contact, canAct bool) decision {
	var d decision

	applyInputEdges(loco, in, contact, canAct)
	d.Climbing = loco.Climbing

	// Horizontal speed selection. Wall contact outside climbing pins the
	// actor in place instead of letting it grind into the wall.
	mv := tun.Movement
	switch {
	case loco.Climbing:
		d.VX = 0
		d.ClimbVY = in.MoveY * mv.ClimbSpeed
	case !canAct:
		d.VX = 0
	case contact.OnWall:
		d.VX = 0
	case in.MoveX == 0:
		d.VX = 0
	case !contact.Grounded:
		d.VX = in.MoveX * mv.AirSpeed
	case in.RunHeld:
		d.VX = in.MoveX * mv.RunSpeed
	default:
		d.VX = in.MoveX * mv.WalkSpeed
	}

	// Jump. The one-shot is still readable here even though the climb
	// check above already ran this tick; it is consumed only when a jump
	// actually fires. Grounded jump wins if contact-down and climbing ever
	// overlap.
	if in.JumpPressed && canAct {
		switch {
		case contact.Grounded:
			d.JumpFired = true
			d.JumpVY = mv.JumpImpulse
			in.JumpPressed = false
		case loco.Climbing && contact.OnWall:
			loco.Climbing = false
			d.Climbing = false
			d.JumpFired = true
			d.JumpVY = mv.JumpImpulse
			d.WallJumpFired = true
			if loco.FacingLeft {
				d.WallJumpVX = mv.WallJumpImpulse
			} else {
				d.WallJumpVX = -mv.WallJumpImpulse
			}
			in.JumpPressed = false
		}
	}

	// Attack passes through unconditionally; the gate is what keeps the
	// resulting animation from also permitting movement, not this machine.
	if in.AttackPressed {
		d.AttackRequested = true
		in.AttackPressed = false
	}

	d.Mode = deriveMode(loco, in, contact)
	loco.Mode = d.Mode
	return d
}

// applyInputEdges is the input-arrival half of the tick: climb entry/exit
// and facing react to input immediately, without waiting on physics.
func applyInputEdges(loco *component.Locomotion, in *component.Input, contact *component.Contact, canAct bool) {
	// Climbing is re-derived fresh every tick, no hysteresis: wall contact
	// present, vertical input non-zero, gate open. Losing any leg exits
	// climbing on the same tick. Flicker at the boundary is accepted.
	loco.Climbing = contact.OnWall && in.MoveY != 0 && canAct

	// Facing: frozen while climbing, frozen while the gate is closed, and
	// never changed by zero input.
	if !loco.Climbing && canAct {
		if in.MoveX > 0 {
			loco.FacingLeft = false
		} else if in.MoveX < 0 {
			loco.FacingLeft = true
		}
	}
}

// deriveMode computes the read-only mode: never stored independently of
// what contact, input, and the run toggle say right now.
func deriveMode(loco *component.Locomotion, in *component.Input, contact *component.Contact) component.Mode {
	switch {
	case loco.Climbing:
		return component.ModeClimb
	case !contact.Grounded:
		return component.ModeAir
	case in.MoveX == 0:
		return component.ModeIdle
	case in.RunHeld:
		return component.ModeRun
	default:
		return component.ModeWalk
	}
}

// apply writes the decision into the physics body and reports the
// resulting vertical velocity (screen-down) for the signal snapshot.
func (s *LocomotionSystem) apply(w *ecs.World, e ecs.Entity, d decision) float64 {
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !ok || bodyComp.Body == nil {
		return 0
	}

	vel := bodyComp.Body.Velocity()
	vx := d.VX
	vy := vel.Y
	if d.Climbing {
		vy = -d.ClimbVY
	}
	if d.JumpFired {
		vy = -d.JumpVY
	}
	if d.WallJumpFired {
		vx = d.WallJumpVX
	}
	bodyComp.Body.SetVelocity(vx, vy)
	return vy
}

// signals assembles the typed per-tick snapshot for the presentation layer
// and pushes the one-shot request events.
func (s *LocomotionSystem) signals(w *ecs.World, e ecs.Entity, loco *component.Locomotion, in *component.Input, contact *component.Contact, d decision, verticalVelocity float64) {
	sig, ok := ecs.Get(w, e, component.AnimSignalsComponent)
	if !ok {
		return
	}

	climbIntent := 0.0
	if d.Climbing {
		climbIntent = in.MoveY
	}

	*sig = component.AnimSignals{
		Moving:           in.MoveX != 0 && !d.Climbing,
		Running:          in.RunHeld,
		Grounded:         contact.Grounded,
		OnWall:           contact.OnWall,
		OnCeiling:        contact.OnCeiling,
		Climbing:         d.Climbing,
		VerticalVelocity: verticalVelocity,
		ClimbIntent:      climbIntent,
		JumpRequested:    d.JumpFired,
		AttackRequested:  d.AttackRequested,
	}

	if d.JumpFired {
		w.Events().Push(ecs.Event{Type: ecs.EventTypeAction, Data: ecs.ActionEvent{Entity: e, Kind: ecs.ActionJumpRequested}})
	}
	if d.AttackRequested {
		w.Events().Push(ecs.Event{Type: ecs.EventTypeAction, Data: ecs.ActionEvent{Entity: e, Kind: ecs.ActionAttackRequested}})
	}
}
