package kernel

import "time"

// DomainEvent is a fact raised by an aggregate and published once the unit
// of work that changed the aggregate has committed.
type DomainEvent interface {
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// EventSource is implemented by aggregates that raise domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// Events is embedded in aggregates to collect raised events.
type Events struct {
	pending []DomainEvent
}

func (e *Events) Raise(event DomainEvent) {
	e.pending = append(e.pending, event)
}

func (e *Events) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(e.pending))
	copy(out, e.pending)
	return out
}

func (e *Events) ClearDomainEvents() {
	e.pending = nil
}
