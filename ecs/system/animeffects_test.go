package system

import (
	"testing"

	"github.com/mossling/clamber/assets"
	"github.com/mossling/clamber/config"
	"github.com/mossling/clamber/ecs/component"
)

func newEffects(t *testing.T, tun config.Tuning) (*AnimEffects, *config.Store) {
	t.Helper()
	store := config.NewStore(tun)
	fx, err := NewAnimEffects(assets.AnimEffectsScript, store)
	if err != nil {
		t.Fatalf("compile effects script: %v", err)
	}
	return fx, store
}

func TestAnimEffectsAttackGate(t *testing.T) {
	fx, _ := newEffects(t, config.Default())
	gate := &component.ActionGate{CanAct: true}

	if err := fx.Transition(gate, AnimIdle, AnimAttack); err != nil {
		t.Fatalf("enter attack: %v", err)
	}
	if gate.CanAct {
		t.Fatalf("entering attack must close the gate")
	}

	if err := fx.Transition(gate, AnimAttack, AnimIdle); err != nil {
		t.Fatalf("exit attack: %v", err)
	}
	if !gate.CanAct {
		t.Fatalf("exiting attack must reopen the gate")
	}
}

func TestAnimEffectsStatesWithoutGateValues(t *testing.T) {
	fx, _ := newEffects(t, config.Default())
	gate := &component.ActionGate{CanAct: true}

	transitions := [][2]string{
		{AnimIdle, AnimWalk},
		{AnimWalk, AnimRun},
		{AnimRun, AnimJump},
		{AnimJump, AnimFall},
		{AnimFall, AnimClimb},
	}
	for _, tr := range transitions {
		if err := fx.Transition(gate, tr[0], tr[1]); err != nil {
			t.Fatalf("transition %s -> %s: %v", tr[0], tr[1], err)
		}
		if !gate.CanAct {
			t.Fatalf("transition %s -> %s must not touch the gate", tr[0], tr[1])
		}
	}
}

func TestAnimEffectsCompatExitReappliesEnter(t *testing.T) {
	tun := config.Default()
	tun.Gate.CompatReapplyEnterOnExit = true
	fx, _ := newEffects(t, tun)
	gate := &component.ActionGate{CanAct: true}

	if err := fx.Transition(gate, AnimIdle, AnimAttack); err != nil {
		t.Fatalf("enter attack: %v", err)
	}
	if err := fx.Transition(gate, AnimAttack, AnimIdle); err != nil {
		t.Fatalf("exit attack: %v", err)
	}
	if gate.CanAct {
		t.Fatalf("compat mode re-applies the enter value on exit, gate must stay closed")
	}
}

func TestAnimEffectsNilGateIsSafe(t *testing.T) {
	fx, _ := newEffects(t, config.Default())
	if err := fx.Transition(nil, AnimIdle, AnimAttack); err != nil {
		t.Fatalf("nil gate transition: %v", err)
	}
}

func TestAnimEffectsHotReloadedValues(t *testing.T) {
	fx, store := newEffects(t, config.Default())
	gate := &component.ActionGate{CanAct: true}

	// Flip the configured enter value at runtime; the script reads tuning
	// through the store, so the next transition sees the new value.
	tun := store.Get()
	tun.Gate.Effects = []config.GateEffect{{State: AnimAttack, Enter: true, Exit: true}}
	store.Set(tun)

	gate.CanAct = false
	if err := fx.Transition(gate, AnimIdle, AnimAttack); err != nil {
		t.Fatalf("enter attack: %v", err)
	}
	if !gate.CanAct {
		t.Fatalf("reloaded enter value must apply")
	}
}
