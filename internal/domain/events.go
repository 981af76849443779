package domain

// EventType identifies a system event.
type EventType string

const (
	EventSpinCompleted  EventType = "spin.completed"
	EventSpinRejected   EventType = "spin.rejected"
	EventBalanceChanged EventType = "balance.changed"
)
