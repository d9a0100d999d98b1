package component

// Input is the latest raw input for an entity, overwritten by the input
// system each tick. MoveX/MoveY are in [-1, 1] with up-positive MoveY.
// JumpPressed and AttackPressed are edge-triggered one-shots: the
// locomotion system clears them once acted upon, so a single press cannot
// be double-counted, but they stay readable by every check within the tick
// that reads them.
type Input struct {
	MoveX float64
	MoveY float64

	RunHeld  bool
	JumpHeld bool

	JumpPressed   bool
	AttackPressed bool
}

var InputComponent = NewComponent[Input]()
