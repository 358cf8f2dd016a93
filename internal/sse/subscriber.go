package sse

import (
	"context"
	"log/slog"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for the spin lifecycle event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.SpinStarted, s.handleSpinStarted)
	s.bus.Subscribe(event.SpinSettled, s.handleSpinSettled)
	s.bus.Subscribe(event.LevelUp, s.handleLevelUp)
	s.bus.Subscribe(event.AutoSpinStopped, s.handleAutoSpinStopped)
	s.bus.Subscribe(event.SpinRejected, s.handleSpinRejected)

	slog.Info("SSE subscriber registered for event types",
		"types", []string{
			string(event.SpinStarted),
			string(event.SpinSettled),
			string(event.LevelUp),
			string(event.AutoSpinStopped),
			string(event.SpinRejected),
		})
}

func (s *Subscriber) handleSpinStarted(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.SpinStartedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgDecodeError, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeSpinStarted, SpinStartedSSEPayload{
		SessionID: payload.SessionID,
		Stake:     payload.Stake,
		Turbo:     payload.Turbo,
		AutoSpin:  payload.AutoSpin,
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeSpinStarted,
		"session_id", payload.SessionID,
		"stake", payload.Stake)

	return nil
}

func (s *Subscriber) handleSpinSettled(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.SpinSettledPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgDecodeError, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeSpinSettled, SpinSettledSSEPayload{
		SessionID:   payload.SessionID,
		GridSymbols: payload.GridSymbols,
		TotalPayout: payload.Outcome.TotalPayout,
		Tier:        string(payload.Outcome.Tier),
		IsWin:       payload.Outcome.IsWin,
		LineWins:    len(payload.Outcome.Wins),
		Currency:    payload.Snapshot.Currency,
		Energy:      payload.Snapshot.Energy,
		Level:       payload.Snapshot.Level,
		Experience:  payload.Snapshot.Experience,
		WinStreak:   payload.Snapshot.WinStreak,
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeSpinSettled,
		"session_id", payload.SessionID,
		"tier", payload.Outcome.Tier,
		"total_payout", payload.Outcome.TotalPayout)

	return nil
}

func (s *Subscriber) handleLevelUp(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.LevelUpPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgDecodeError, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeLevelUp, LevelUpSSEPayload{
		NewLevel: payload.NewLevel,
		Bonus:    payload.Bonus,
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeLevelUp,
		"new_level", payload.NewLevel)

	return nil
}

func (s *Subscriber) handleAutoSpinStopped(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.AutoSpinStoppedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgDecodeError, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeAutoSpinStopped, AutoSpinStoppedSSEPayload{
		Reason: string(payload.Reason),
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeAutoSpinStopped,
		"reason", payload.Reason)

	return nil
}

func (s *Subscriber) handleSpinRejected(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.SpinRejectedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgDecodeError, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeSpinRejected, SpinRejectedSSEPayload{
		Reason: string(payload.Reason),
		Stake:  payload.Stake,
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeSpinRejected,
		"reason", payload.Reason)

	return nil
}
