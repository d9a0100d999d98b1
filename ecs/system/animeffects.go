package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/mossling/clamber/config"
	"github.com/mossling/clamber/ecs/component"
)

// AnimEffects runs the scripted animation-state side effects: a Tengo
// script with onEnter/onExit functions, dispatched through a compiled
// phase preamble. The script is the sole writer of the action gate; the
// locomotion core only ever reads it.
//
// Gate values per animation state come from the tuning config. The engine
// also exposes the compat flag reproducing the legacy defect where the
// exit hook re-applied the enter value (so the gate never released through
// that path); the script decides which value to apply on exit.
type AnimEffects struct {
	cfg      *config.Store
	compiled *tengo.Compiled
	state    *tengo.Map
}

const effectsDispatchScript = `
if __phase == "enter" {
	onEnter(__engine, __state, __anim)
} else if __phase == "exit" {
	onExit(__engine, __state, __anim)
}
`

func NewAnimEffects(src []byte, cfg *config.Store) (*AnimEffects, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("anim effects: empty script")
	}

	script := tengo.NewScript(append(append([]byte{}, src...), []byte("\n"+effectsDispatchScript)...))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__anim", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("anim effects: compile: %w", err)
	}

	return &AnimEffects{
		cfg:      cfg,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// Transition fires the exit hook for the old animation state and the enter
// hook for the new one, in that order.
func (fx *AnimEffects) Transition(gate *component.ActionGate, from, to string) error {
	if fx == nil || fx.compiled == nil {
		return fmt.Errorf("anim effects: nil runtime")
	}
	engine := fx.buildEngine(gate)
	if from != "" {
		if err := fx.runPhase("exit", from, engine); err != nil {
			return err
		}
	}
	return fx.runPhase("enter", to, engine)
}

func (fx *AnimEffects) runPhase(phase, anim string, engine *tengo.ImmutableMap) error {
	if err := fx.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := fx.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := fx.compiled.Set("__state", fx.state); err != nil {
		return err
	}
	if err := fx.compiled.Set("__anim", anim); err != nil {
		return err
	}
	return fx.compiled.Run()
}

func (fx *AnimEffects) buildEngine(gate *component.ActionGate) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["set_can_act"] = &tengo.UserFunction{Name: "set_can_act", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if gate == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		gate.CanAct = !args[0].IsFalsy()
		return tengo.TrueValue, nil
	}}

	values["can_act"] = &tengo.UserFunction{Name: "can_act", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if gate != nil && gate.CanAct {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["gate_enter_value"] = &tengo.UserFunction{Name: "gate_enter_value", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if fx.cfg == nil || len(args) < 1 {
			return tengo.UndefinedValue, nil
		}
		name, _ := tengo.ToString(args[0])
		v, ok := fx.cfg.Get().Gate.EnterValue(name)
		return boolObject(v, ok), nil
	}}

	values["gate_exit_value"] = &tengo.UserFunction{Name: "gate_exit_value", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if fx.cfg == nil || len(args) < 1 {
			return tengo.UndefinedValue, nil
		}
		name, _ := tengo.ToString(args[0])
		v, ok := fx.cfg.Get().Gate.ExitValue(name)
		return boolObject(v, ok), nil
	}}

	values["compat_exit"] = &tengo.UserFunction{Name: "compat_exit", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if fx.cfg != nil && fx.cfg.Get().Gate.CompatReapplyEnterOnExit {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func boolObject(v, ok bool) tengo.Object {
	if !ok {
		return tengo.UndefinedValue
	}
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}
