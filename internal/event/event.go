package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Typed event payloads for type safety

// SpinCompletedPayloadV1 is the typed payload for spin completion events
type SpinCompletedPayloadV1 struct {
	SpinID         string `json:"spin_id"`
	UserID         string `json:"user_id"`
	ThemeKey       string `json:"theme_key"`
	BetAmount      int64  `json:"bet_amount"`
	TotalWin       int64  `json:"total_win"`
	BonusTriggered bool   `json:"bonus_triggered"`
	JackpotWon     bool   `json:"jackpot_won"`
	Settled        bool   `json:"settled"`
	Timestamp      int64  `json:"timestamp"`
}

// SpinRejectedPayloadV1 is the typed payload for spin rejection events
type SpinRejectedPayloadV1 struct {
	UserID    string `json:"user_id"`
	ThemeKey  string `json:"theme_key"`
	BetAmount int64  `json:"bet_amount"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// BalanceChangedPayloadV1 is the typed payload for ledger mutation events
type BalanceChangedPayloadV1 struct {
	UserID        string                 `json:"user_id"`
	Amount        int64                  `json:"amount"`
	Kind          domain.TransactionKind `json:"kind"`
	NewBalance    int64                  `json:"new_balance"`
	TransactionID string                 `json:"transaction_id"`
	Reference     string                 `json:"reference,omitempty"`
	Timestamp     int64                  `json:"timestamp"`
}

// NewSpinCompletedEvent creates a new spin completed event with type-safe payload
func NewSpinCompletedEvent(record *domain.SpinRecord) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventSpinCompleted),
		Payload: SpinCompletedPayloadV1{
			SpinID:         record.ID,
			UserID:         record.UserID,
			ThemeKey:       record.Outcome.ThemeKey,
			BetAmount:      record.Outcome.BetAmount,
			TotalWin:       record.Outcome.TotalWin,
			BonusTriggered: record.Outcome.BonusTriggered,
			JackpotWon:     record.Outcome.JackpotWon,
			Settled:        record.Settled,
			Timestamp:      time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewSpinRejectedEvent creates a new spin rejected event
func NewSpinRejectedEvent(userID, themeKey string, betAmount int64, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventSpinRejected),
		Payload: SpinRejectedPayloadV1{
			UserID:    userID,
			ThemeKey:  themeKey,
			BetAmount: betAmount,
			Reason:    reason,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewBalanceChangedEvent creates a new balance changed event
func NewBalanceChangedEvent(userID string, amount int64, kind domain.TransactionKind, newBalance int64, transactionID, reference string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventBalanceChanged),
		Payload: BalanceChangedPayloadV1{
			UserID:        userID,
			Amount:        amount,
			Kind:          kind,
			NewBalance:    newBalance,
			TransactionID: transactionID,
			Reference:     reference,
			Timestamp:     time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; a failing handler never blocks the others.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
