package component

// PlayerTag marks the controllable actor.
type PlayerTag struct{}

// Mode is the derived locomotion mode. It is computed every tick from
// contact, input, and the run toggle; nothing latches it.
type Mode string

const (
	ModeIdle  Mode = "idle"
	ModeWalk  Mode = "walk"
	ModeRun   Mode = "run"
	ModeAir   Mode = "air"
	ModeClimb Mode = "climb"
)

// Locomotion is the per-actor movement state the locomotion system owns:
// facing, the climb flag, and the derived mode.
type Locomotion struct {
	FacingLeft bool
	Climbing   bool
	Mode       Mode
}

var PlayerTagComponent = NewComponent[PlayerTag]()
var LocomotionComponent = NewComponent[Locomotion]()
