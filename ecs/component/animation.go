package component

// Animation is the presentation-side animation state. The attack state is
// timed and non-looping; everything else is selected fresh each tick from
// AnimSignals.
type Animation struct {
	Current   string
	TicksLeft int
}

var AnimationComponent = NewComponent[Animation]()
