// Package history keeps a bounded, time-expiring record of recently
// settled spins for the read API. It fills itself from the event bus.
package history

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/event"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/logger"
)

// Service defines the interface for spin history lookups
type Service interface {
	Record(record domain.SpinRecord)
	Get(sessionID string) (domain.SpinRecord, bool)
	Recent(limit int) []domain.SpinRecord
}

type service struct {
	lru *expirable.LRU[string, domain.SpinRecord]
}

// NewService creates a new history service.
// size: maximum number of retained spins
// ttl: time-to-live per entry
func NewService(size int, ttl time.Duration) Service {
	return &service{
		lru: expirable.NewLRU[string, domain.SpinRecord](size, nil, ttl),
	}
}

// Record stores one settled spin keyed by session ID
func (s *service) Record(record domain.SpinRecord) {
	s.lru.Add(record.SessionID, record)
}

// Get retrieves a single spin by session ID
func (s *service) Get(sessionID string) (domain.SpinRecord, bool) {
	return s.lru.Get(sessionID)
}

// Recent returns up to limit spins, newest first
func (s *service) Recent(limit int) []domain.SpinRecord {
	values := s.lru.Values() // oldest to newest
	if limit <= 0 || limit > len(values) {
		limit = len(values)
	}

	recent := make([]domain.SpinRecord, 0, limit)
	for i := len(values) - 1; i >= len(values)-limit; i-- {
		recent = append(recent, values[i])
	}
	return recent
}

// SubscribeToBus wires the history service into the settled-spin stream
func SubscribeToBus(bus event.Bus, svc Service) {
	bus.Subscribe(event.SpinSettled, func(ctx context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[domain.SpinSettledPayload](evt.Payload)
		if err != nil {
			logger.FromContext(ctx).Warn("failed to decode settled event for history", "error", err)
			return err
		}
		svc.Record(domain.SpinRecord{
			SessionID:   payload.SessionID,
			Outcome:     payload.Outcome,
			GridSymbols: payload.GridSymbols,
			SettledAt:   time.Unix(payload.Timestamp, 0),
		})
		return nil
	})
}
