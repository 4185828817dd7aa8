package chatbot

// Event is a sealed interface describing a change to a Controller's state.
// Subscribers receive events in the order the changes were made.
// The unexported marker method prevents external implementations.
type Event interface {
	event()
}

// EventTurnAppended reports a turn appended at position Index.
type EventTurnAppended struct {
	Index int
	Turn  Turn
}

func (EventTurnAppended) event() {}

// EventPendingChanged reports a transition between Idle and Awaiting.
type EventPendingChanged struct {
	Pending bool
}

func (EventPendingChanged) event() {}

// EventReset reports that the transcript was cleared.
type EventReset struct{}

func (EventReset) event() {}

// Interface compliance checks.
var (
	_ Event = EventTurnAppended{}
	_ Event = EventPendingChanged{}
	_ Event = EventReset{}
)
