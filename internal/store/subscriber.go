package store

import (
	"context"
	"time"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/event"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/logger"
)

// Log messages
const (
	LogMsgSpinPersisted       = "Settled spin persisted"
	LogMsgPersistFailed       = "Failed to persist settled spin"
	LogMsgSnapshotSaveFailed  = "Failed to persist economy snapshot"
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for persistence"
)

// SubscribeToBus persists settled spins and the latest economy snapshot
// as they flow through the event bus. Persistence failures are returned
// so the bus surfaces them, but never block settlement.
func SubscribeToBus(bus event.Bus, repo Repository) {
	bus.Subscribe(event.SpinSettled, func(ctx context.Context, evt event.Event) error {
		log := logger.FromContext(ctx)

		payload, err := event.DecodePayload[domain.SpinSettledPayload](evt.Payload)
		if err != nil {
			log.Warn(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}

		record := domain.SpinRecord{
			SessionID:   payload.SessionID,
			Outcome:     payload.Outcome,
			GridSymbols: payload.GridSymbols,
			SettledAt:   time.Unix(payload.Timestamp, 0),
		}

		if err := repo.SaveSpin(ctx, record); err != nil {
			log.Error(LogMsgPersistFailed, "session_id", payload.SessionID, "error", err)
			return err
		}

		if err := repo.SaveSnapshot(ctx, payload.Snapshot); err != nil {
			log.Error(LogMsgSnapshotSaveFailed, "session_id", payload.SessionID, "error", err)
			return err
		}

		log.Debug(LogMsgSpinPersisted, "session_id", payload.SessionID)
		return nil
	})
}
