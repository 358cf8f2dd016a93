package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	require.NoError(t, err)
	assert.True(t, handled, "handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	assert.Error(t, err)
}

func TestMemoryBus_PublishNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	err := bus.Publish(context.Background(), NewLevelUpEvent(2, 500))
	assert.NoError(t, err)
}

func TestNewSpinStartedEvent(t *testing.T) {
	ev := NewSpinStartedEvent("session-1", 100, true, false)

	assert.Equal(t, SpinStarted, ev.Type)
	assert.Equal(t, EventSchemaVersion, ev.Version)
	assert.Equal(t, "session-1", ev.GetMetadataValue("session_id"))

	payload, err := DecodePayload[domain.SpinStartedPayload](ev.Payload)
	require.NoError(t, err)
	assert.Equal(t, "session-1", payload.SessionID)
	assert.Equal(t, 100, payload.Stake)
	assert.True(t, payload.Turbo)
	assert.False(t, payload.AutoSpin)
	assert.NotZero(t, payload.Timestamp)
}

func TestNewSpinRejectedEvent(t *testing.T) {
	ev := NewSpinRejectedEvent(domain.ReasonInsufficientEnergy, 250)

	payload, err := DecodePayload[domain.SpinRejectedPayload](ev.Payload)
	require.NoError(t, err)
	assert.Equal(t, domain.ReasonInsufficientEnergy, payload.Reason)
	assert.Equal(t, 250, payload.Stake)
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	// Simulates a payload that went through serialization and comes back
	// as a generic map instead of the typed struct.
	raw := map[string]interface{}{
		"new_level": 3,
		"bonus":     500,
		"timestamp": int64(1700000000),
	}

	payload, err := DecodePayload[domain.LevelUpPayload](raw)
	require.NoError(t, err)
	assert.Equal(t, 3, payload.NewLevel)
	assert.Equal(t, 500, payload.Bonus)
}

func TestDecodePayload_Mismatch(t *testing.T) {
	_, err := DecodePayload[domain.LevelUpPayload]("not a payload")
	assert.Error(t, err)
}
