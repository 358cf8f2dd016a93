package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
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

// Spin lifecycle event types
const (
	SpinStarted     Type = Type(domain.EventSpinStarted)
	SpinSettled     Type = Type(domain.EventSpinSettled)
	LevelUp         Type = Type(domain.EventLevelUp)
	AutoSpinStopped Type = Type(domain.EventAutoSpinStopped)
	SpinRejected    Type = Type(domain.EventSpinRejected)
)

// Type-safe event constructors

// NewSpinStartedEvent creates a new spin started event
func NewSpinStartedEvent(sessionID string, stake int, turbo, autoSpin bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinStarted,
		Payload: domain.SpinStartedPayload{
			SessionID: sessionID,
			Stake:     stake,
			Turbo:     turbo,
			AutoSpin:  autoSpin,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"session_id": sessionID,
		},
	}
}

// NewSpinSettledEvent creates a new spin settled event carrying the full
// outcome, the revealed grid and the economy snapshot taken after settlement
func NewSpinSettledEvent(sessionID string, outcome domain.SpinOutcome, snapshot domain.EconomySnapshot, gridSymbols []string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinSettled,
		Payload: domain.SpinSettledPayload{
			SessionID:   sessionID,
			Outcome:     outcome,
			Snapshot:    snapshot,
			GridSymbols: gridSymbols,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"session_id": sessionID,
		},
	}
}

// NewLevelUpEvent creates a new level up event. Multi-level settlements
// publish one event per level gained, in order.
func NewLevelUpEvent(newLevel, bonus int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: domain.LevelUpPayload{
			NewLevel:  newLevel,
			Bonus:     bonus,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewAutoSpinStoppedEvent creates a new auto-spin stopped event
func NewAutoSpinStoppedEvent(reason domain.RejectReason) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AutoSpinStopped,
		Payload: domain.AutoSpinStoppedPayload{
			Reason:    reason,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewSpinRejectedEvent creates a new spin rejected event
func NewSpinRejectedEvent(reason domain.RejectReason, stake int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinRejected,
		Payload: domain.SpinRejectedPayload{
			Reason:    reason,
			Stake:     stake,
			Timestamp: time.Now().Unix(),
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

// Publish publishes an event to all subscribers. Handlers run
// synchronously; all of them run even when some fail.
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
