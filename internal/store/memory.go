package store

import (
	"context"
	"sync"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
)

// memoryRepository is the zero-dependency fallback used when no
// DATABASE_URL is configured. State is lost on restart.
type memoryRepository struct {
	mu       sync.RWMutex
	spins    []domain.SpinRecord
	snapshot *domain.EconomySnapshot
}

// NewMemoryRepository creates an in-memory repository
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) SaveSpin(_ context.Context, record domain.SpinRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spins = append(r.spins, record)
	return nil
}

func (r *memoryRepository) RecentSpins(_ context.Context, limit int) ([]domain.SpinRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.spins)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]domain.SpinRecord, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, r.spins[i])
	}
	return out, nil
}

func (r *memoryRepository) SaveSnapshot(_ context.Context, snapshot domain.EconomySnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = &snapshot
	return nil
}

func (r *memoryRepository) LoadSnapshot(_ context.Context) (domain.EconomySnapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.snapshot == nil {
		return domain.EconomySnapshot{}, false, nil
	}
	return *r.snapshot, true, nil
}

func (r *memoryRepository) Ping(_ context.Context) error { return nil }

func (r *memoryRepository) Close() {}
