package component

// AnimSignals is the typed per-tick snapshot handed to the presentation
// layer. It replaces a string-keyed animator parameter bag: the locomotion
// system assembles the whole struct once per tick and presentation only
// reads it. JumpRequested and AttackRequested are one-shots consumed by the
// animation system.
type AnimSignals struct {
	Moving    bool
	Running   bool
	Grounded  bool
	OnWall    bool
	OnCeiling bool
	Climbing  bool

	// VerticalVelocity is the physical vertical speed in screen-down
	// coordinates (positive = falling), for rise/fall animation blends.
	VerticalVelocity float64
	// ClimbIntent is the raw up-positive vertical input while climbing,
	// distinct from the realized physical velocity.
	ClimbIntent float64

	JumpRequested   bool
	AttackRequested bool
}

var AnimSignalsComponent = NewComponent[AnimSignals]()
