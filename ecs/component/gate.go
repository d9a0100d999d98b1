package component

// ActionGate is the single externally-owned boolean that permits or blocks
// velocity changes. Only the animation-effects layer writes it; the
// locomotion system polls it once per tick and never caches it, because
// attacks can begin and end between ticks.
type ActionGate struct {
	CanAct bool
}

var ActionGateComponent = NewComponent[ActionGate]()
