package ecs

// Event is a fire-and-forget notification pushed by systems during a tick
// and drained by whoever cares before the end-of-tick flush.
type Event struct {
	Type string
	Data any
}

const (
	EventTypeContact = "contact"
	EventTypeAction  = "action"
)

// ContactEvent reports one contact flag changing value.
type ContactEvent struct {
	Entity Entity
	Flag   ContactFlag
	Value  bool
}

type ContactFlag string

const (
	ContactGrounded  ContactFlag = "grounded"
	ContactOnWall    ContactFlag = "on_wall"
	ContactOnCeiling ContactFlag = "on_ceiling"
)

// ActionEvent reports a one-shot locomotion request.
type ActionEvent struct {
	Entity Entity
	Kind   ActionKind
}

type ActionKind string

const (
	ActionJumpRequested   ActionKind = "jump_requested"
	ActionAttackRequested ActionKind = "attack_requested"
)

// EventQueue is a simple FIFO drained within the tick that filled it.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all pending events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
