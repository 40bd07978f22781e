package metrics

import (
	"context"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/event"
	"github.com/tamaverse/TamaPet_Go/internal/logger"
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
		event.ItemPurchased,
		event.ItemEquipped,
		event.ItemUnequipped,
		event.MonsterCreated,
		event.MonsterAction,
		event.MonsterLeveledUp,
		event.WalletCredited,
		event.WalletDebited,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. Payloads are the typed
// structs the event constructors emit; anything else only bumps the generic
// published counter.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case domain.ItemPurchasedPayload:
		ItemsPurchased.WithLabelValues(payload.Category).Inc()

	case domain.ItemEquippedPayload:
		if payload.Equipped {
			ItemsEquipped.WithLabelValues(payload.Category).Inc()
		}

	case domain.MonsterCreatedPayload:
		MonstersCreated.Inc()

	case domain.MonsterActionPayload:
		outcome := OutcomeMismatch
		if payload.Rewarded {
			outcome = OutcomeRewarded
		}
		ActionsResolved.WithLabelValues(payload.Action, outcome).Inc()

	case domain.MonsterLeveledUpPayload:
		LevelUps.Inc()

	case domain.WalletChangedPayload:
		switch payload.Type {
		case string(domain.TransactionEarn):
			CoinsEarned.Add(float64(payload.Amount))
		case string(domain.TransactionSpend):
			CoinsSpent.Add(float64(payload.Amount))
		}

	default:
		log.Debug(LogMsgUnknownPayloadShape, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
