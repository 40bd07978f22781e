package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Common event types
const (
	ItemPurchased    Type = Type(domain.EventTypeItemPurchased)
	ItemEquipped     Type = Type(domain.EventTypeItemEquipped)
	ItemUnequipped   Type = Type(domain.EventTypeItemUnequipped)
	MonsterCreated   Type = Type(domain.EventTypeMonsterCreated)
	MonsterAction    Type = Type(domain.EventTypeMonsterAction)
	MonsterLeveledUp Type = Type(domain.EventTypeMonsterLeveledUp)
	WalletCredited   Type = Type(domain.EventTypeWalletCredited)
	WalletDebited    Type = Type(domain.EventTypeWalletDebited)
)

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata interface{} `json:"metadata,omitempty"`
}

// Type-safe event constructors

// NewItemPurchasedEvent records a committed shop purchase.
func NewItemPurchasedEvent(p domain.ItemPurchasedPayload) Event {
	p.Timestamp = time.Now().Unix()
	return Event{Version: EventSchemaVersion, Type: ItemPurchased, Payload: p}
}

// NewItemEquippedEvent records an equip or unequip commit.
func NewItemEquippedEvent(p domain.ItemEquippedPayload) Event {
	p.Timestamp = time.Now().Unix()
	t := ItemEquipped
	if !p.Equipped {
		t = ItemUnequipped
	}
	return Event{Version: EventSchemaVersion, Type: t, Payload: p}
}

// NewMonsterCreatedEvent records a monster creation.
func NewMonsterCreatedEvent(p domain.MonsterCreatedPayload) Event {
	p.Timestamp = time.Now().Unix()
	return Event{Version: EventSchemaVersion, Type: MonsterCreated, Payload: p}
}

// NewMonsterActionEvent records a resolved care action.
func NewMonsterActionEvent(p domain.MonsterActionPayload) Event {
	p.Timestamp = time.Now().Unix()
	return Event{Version: EventSchemaVersion, Type: MonsterAction, Payload: p}
}

// NewMonsterLeveledUpEvent records a level gain (one event per resolution,
// however many levels the XP jump crossed).
func NewMonsterLeveledUpEvent(p domain.MonsterLeveledUpPayload) Event {
	p.Timestamp = time.Now().Unix()
	return Event{Version: EventSchemaVersion, Type: MonsterLeveledUp, Payload: p}
}

// NewWalletChangedEvent records a ledger credit or debit.
func NewWalletChangedEvent(p domain.WalletChangedPayload) Event {
	p.Timestamp = time.Now().Unix()
	t := WalletCredited
	if p.Type == string(domain.TransactionSpend) {
		t = WalletDebited
	}
	return Event{Version: EventSchemaVersion, Type: t, Payload: p}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher is the write-side surface services depend on; the resilient
// publisher satisfies it.
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
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

// Publish publishes an event to all subscribers synchronously.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

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
