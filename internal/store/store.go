// Package store persists settled spins and the economy snapshot. The
// engine runs entirely in memory; the store is a write-behind audit log
// fed from the event bus, plus the snapshot used to resume state across
// restarts.
package store

import (
	"context"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
)

// Repository defines the persistence operations for the spin engine
type Repository interface {
	// SaveSpin appends one settled spin to the audit log
	SaveSpin(ctx context.Context, record domain.SpinRecord) error

	// RecentSpins returns persisted spins, newest first
	RecentSpins(ctx context.Context, limit int) ([]domain.SpinRecord, error)

	// SaveSnapshot replaces the stored economy snapshot
	SaveSnapshot(ctx context.Context, snapshot domain.EconomySnapshot) error

	// LoadSnapshot returns the stored economy snapshot. The second
	// return is false when no snapshot has been saved yet.
	LoadSnapshot(ctx context.Context) (domain.EconomySnapshot, bool, error)

	// Ping reports backend reachability
	Ping(ctx context.Context) error

	// Close releases backing resources
	Close()
}
