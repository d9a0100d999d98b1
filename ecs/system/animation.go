package system

import (
	"log"

	"github.com/mossling/clamber/config"
	"github.com/mossling/clamber/ecs"
	"github.com/mossling/clamber/ecs/component"
)

// Animation state names. These belong to the presentation layer; the
// locomotion core never sees them.
const (
	AnimIdle   = "idle"
	AnimWalk   = "walk"
	AnimRun    = "run"
	AnimJump   = "jump"
	AnimFall   = "fall"
	AnimClimb  = "climb"
	AnimAttack = "attack"
)

// AnimationSystem is the presentation-side state machine. It consumes only
// the AnimSignals snapshot, so it can't reach into the core's internals,
// and it drives the scripted effects layer on every state change, which
// is where the action gate gets written.
type AnimationSystem struct {
	cfg     *config.Store
	effects *AnimEffects
}

func NewAnimationSystem(cfg *config.Store, effects *AnimEffects) *AnimationSystem {
	return &AnimationSystem{cfg: cfg, effects: effects}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.AnimationComponent, component.AnimSignalsComponent, func(e ecs.Entity, anim *component.Animation, sig *component.AnimSignals) {
		if anim.Current == AnimAttack && anim.TicksLeft > 0 {
			anim.TicksLeft--
		}

		next := a.selectState(anim, sig)
		if next == anim.Current {
			// Re-requesting an attack mid-attack restarts the swing timer
			// without re-firing the enter/exit hooks.
			if next == AnimAttack && sig.AttackRequested {
				anim.TicksLeft = a.cfg.Get().Attack.DurationTicks
			}
			return
		}

		prev := anim.Current
		anim.Current = next
		if next == AnimAttack {
			anim.TicksLeft = a.cfg.Get().Attack.DurationTicks
		}

		if a.effects == nil {
			return
		}
		var gate *component.ActionGate
		if g, ok := ecs.Get(w, e, component.ActionGateComponent); ok {
			gate = g
		}
		if err := a.effects.Transition(gate, prev, next); err != nil {
			log.Printf("animation: effects %s -> %s: %v", prev, next, err)
		}
	})
}

// selectState picks the animation for this tick. Attack interrupts from
// any state and holds until its timer runs out; everything else follows
// the signals directly.
func (a *AnimationSystem) selectState(anim *component.Animation, sig *component.AnimSignals) string {
	if sig.AttackRequested {
		return AnimAttack
	}
	if anim.Current == AnimAttack && anim.TicksLeft > 0 {
		return AnimAttack
	}
	switch {
	case sig.Climbing:
		return AnimClimb
	case !sig.Grounded:
		if sig.VerticalVelocity < 0 {
			return AnimJump
		}
		return AnimFall
	case sig.Moving && sig.Running:
		return AnimRun
	case sig.Moving:
		return AnimWalk
	default:
		return AnimIdle
	}
}
