package metrics

import (
	"context"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
	"github.com/spinworks/SlotEngine_Go/internal/event"
	"github.com/spinworks/SlotEngine_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.Type(domain.EventSpinCompleted),
		event.Type(domain.EventSpinRejected),
		event.Type(domain.EventBalanceChanged),
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.Type(domain.EventSpinCompleted):
		payload, err := event.DecodePayload[event.SpinCompletedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type, "error", err)
			return nil
		}
		SpinsTotal.WithLabelValues(payload.ThemeKey).Inc()
		AmountWagered.Add(float64(payload.BetAmount))
		if payload.TotalWin > 0 {
			SpinWins.WithLabelValues(payload.ThemeKey).Inc()
			AmountPaidOut.Add(float64(payload.TotalWin))
		}
		if payload.BonusTriggered {
			BonusesTriggered.WithLabelValues(payload.ThemeKey).Inc()
		}
		if payload.JackpotWon {
			JackpotsWon.WithLabelValues(payload.ThemeKey).Inc()
		}

	case event.Type(domain.EventSpinRejected):
		InsufficientBalanceRejections.Inc()

	case event.Type(domain.EventBalanceChanged):
		payload, err := event.DecodePayload[event.BalanceChangedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type, "error", err)
			return nil
		}
		LedgerTransactions.WithLabelValues(string(payload.Kind)).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
