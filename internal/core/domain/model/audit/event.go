package audit

import "time"

// Event is a message emitted by an aggregate for the audit log.
type Event struct {
	message    string
	occurredAt time.Time
}

// NewEvent stamps message with the current time.
func NewEvent(message string) Event {
	return Event{message: message, occurredAt: time.Now().UTC()}
}

func (e Event) Message() string {
	return e.message
}

func (e Event) OccurredAt() time.Time {
	return e.occurredAt
}

// Trail collects events raised on an aggregate until a handler drains them.
// It is embedded by value; the zero value is ready to use.
type Trail struct {
	events []Event
}

// Record appends an event with the given message.
func (t *Trail) Record(message string) {
	t.events = append(t.events, NewEvent(message))
}

// Events returns a copy of the recorded, not yet drained events.
func (t *Trail) Events() []Event {
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// DrainEvents returns the recorded events and clears the trail.
func (t *Trail) DrainEvents() []Event {
	out := t.events
	t.events = nil
	return out
}
