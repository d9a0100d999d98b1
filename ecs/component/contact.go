package component

// Contact is the per-tick environment contact snapshot produced by the
// contact probe. It is recomputed wholesale every tick from one spatial
// snapshot, never partially mutated, and never carried across ticks.
type Contact struct {
	Grounded  bool
	OnWall    bool
	OnCeiling bool
}

var ContactComponent = NewComponent[Contact]()
