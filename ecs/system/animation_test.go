package system

import (
	"testing"

	"github.com/mossling/clamber/config"
	"github.com/mossling/clamber/ecs"
	"github.com/mossling/clamber/ecs/component"
)

func TestSelectState(t *testing.T) {
	sys := NewAnimationSystem(config.NewStore(config.Default()), nil)

	cases := []struct {
		name string
		anim component.Animation
		sig  component.AnimSignals
		want string
	}{
		{"attack_interrupts_anything", component.Animation{Current: AnimRun}, component.AnimSignals{AttackRequested: true, Grounded: true, Moving: true}, AnimAttack},
		{"attack_holds_while_timer_runs", component.Animation{Current: AnimAttack, TicksLeft: 5}, component.AnimSignals{Grounded: true}, AnimAttack},
		{"attack_releases_at_zero", component.Animation{Current: AnimAttack, TicksLeft: 0}, component.AnimSignals{Grounded: true}, AnimIdle},
		{"climb", component.Animation{Current: AnimIdle}, component.AnimSignals{Climbing: true}, AnimClimb},
		{"jump_while_rising", component.Animation{Current: AnimIdle}, component.AnimSignals{VerticalVelocity: -100}, AnimJump},
		{"fall_while_dropping", component.Animation{Current: AnimIdle}, component.AnimSignals{VerticalVelocity: 100}, AnimFall},
		{"run", component.Animation{Current: AnimIdle}, component.AnimSignals{Grounded: true, Moving: true, Running: true}, AnimRun},
		{"walk", component.Animation{Current: AnimIdle}, component.AnimSignals{Grounded: true, Moving: true}, AnimWalk},
		{"idle", component.Animation{Current: AnimWalk}, component.AnimSignals{Grounded: true}, AnimIdle},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			anim := c.anim
			sig := c.sig
			if got := sys.selectState(&anim, &sig); got != c.want {
				t.Fatalf("selectState = %s, want %s", got, c.want)
			}
		})
	}
}

func TestAnimationAttackTimerAndGate(t *testing.T) {
	tun := config.Default()
	fx, store := newEffects(t, tun)
	sys := NewAnimationSystem(store, fx)

	w := ecs.NewWorld()
	e := w.CreateEntity()
	anim := &component.Animation{Current: AnimIdle}
	sig := &component.AnimSignals{Grounded: true}
	gate := &component.ActionGate{CanAct: true}
	adds := []error{
		ecs.Add(w, e, component.AnimationComponent, anim),
		ecs.Add(w, e, component.AnimSignalsComponent, sig),
		ecs.Add(w, e, component.ActionGateComponent, gate),
	}
	for _, err := range adds {
		if err != nil {
			t.Fatalf("add component: %v", err)
		}
	}

	sig.AttackRequested = true
	sys.Update(w)
	if anim.Current != AnimAttack {
		t.Fatalf("anim = %s, want attack", anim.Current)
	}
	if anim.TicksLeft != tun.Attack.DurationTicks {
		t.Fatalf("TicksLeft = %d, want %d", anim.TicksLeft, tun.Attack.DurationTicks)
	}
	if gate.CanAct {
		t.Fatalf("attack enter must close the gate")
	}

	// The swing holds for its full duration with no further requests.
	sig.AttackRequested = false
	sys.Update(w)
	if anim.Current != AnimAttack || gate.CanAct {
		t.Fatalf("attack must hold mid-swing")
	}

	for i := 0; i < tun.Attack.DurationTicks; i++ {
		sys.Update(w)
	}
	if anim.Current != AnimIdle {
		t.Fatalf("anim = %s, want idle after the swing", anim.Current)
	}
	if !gate.CanAct {
		t.Fatalf("attack exit must reopen the gate")
	}
}

func TestAnimationAttackRerequestRestartsTimer(t *testing.T) {
	tun := config.Default()
	fx, store := newEffects(t, tun)
	sys := NewAnimationSystem(store, fx)

	w := ecs.NewWorld()
	e := w.CreateEntity()
	anim := &component.Animation{Current: AnimIdle}
	sig := &component.AnimSignals{Grounded: true}
	gate := &component.ActionGate{CanAct: true}
	adds := []error{
		ecs.Add(w, e, component.AnimationComponent, anim),
		ecs.Add(w, e, component.AnimSignalsComponent, sig),
		ecs.Add(w, e, component.ActionGateComponent, gate),
	}
	for _, err := range adds {
		if err != nil {
			t.Fatalf("add component: %v", err)
		}
	}

	sig.AttackRequested = true
	sys.Update(w)

	sig.AttackRequested = false
	for i := 0; i < 10; i++ {
		sys.Update(w)
	}
	if anim.TicksLeft >= tun.Attack.DurationTicks {
		t.Fatalf("timer must have ticked down, got %d", anim.TicksLeft)
	}

	sig.AttackRequested = true
	sys.Update(w)
	if anim.TicksLeft != tun.Attack.DurationTicks {
		t.Fatalf("TicksLeft = %d, want restarted at %d", anim.TicksLeft, tun.Attack.DurationTicks)
	}
	if anim.Current != AnimAttack {
		t.Fatalf("anim = %s, want attack", anim.Current)
	}
}
