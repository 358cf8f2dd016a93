package spin

import (
	"time"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
)

// State is the lifecycle state of the spin session machine
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSpinning   State = "spinning"
	StateResolving  State = "resolving"
	StateSettled    State = "settled"
)

// InFlight reports whether the state admits no new spin requests
func (s State) InFlight() bool {
	switch s {
	case StateValidating, StateSpinning, StateResolving:
		return true
	}
	return false
}

// session is the transient per-spin record. Created at spin start,
// discarded at settlement; never exposed directly.
type session struct {
	id        string
	stake     int
	turbo     bool
	auto      bool
	themeID   string
	grid      domain.Grid
	snapshot  domain.EconomySnapshot // taken at authorization, drives multipliers
	startedAt time.Time
	settleAt  time.Time
	revealAt  [domain.GridCols]time.Time
}

// gridSymbolIDs flattens the grid column-major for events and history
func (s *session) gridSymbolIDs() []string {
	ids := make([]string, 0, domain.GridCols*domain.GridRows)
	for col := 0; col < domain.GridCols; col++ {
		for row := 0; row < domain.GridRows; row++ {
			ids = append(ids, s.grid[col][row].ID)
		}
	}
	return ids
}

// SessionView is the read-only projection of an in-flight session.
// Reveal timestamps are presentation pacing only; the outcome is fixed
// at the single logical settle time.
type SessionView struct {
	ID        string      `json:"id"`
	Stake     int         `json:"stake"`
	Turbo     bool        `json:"turbo"`
	AutoSpin  bool        `json:"auto_spin"`
	ThemeID   string      `json:"theme_id"`
	StartedAt time.Time   `json:"started_at"`
	SettleAt  time.Time   `json:"settle_at"`
	RevealAt  []time.Time `json:"reveal_at"`
}

func (s *session) view() *SessionView {
	reveal := make([]time.Time, domain.GridCols)
	copy(reveal, s.revealAt[:])
	return &SessionView{
		ID:        s.id,
		Stake:     s.stake,
		Turbo:     s.turbo,
		AutoSpin:  s.auto,
		ThemeID:   s.themeID,
		StartedAt: s.startedAt,
		SettleAt:  s.settleAt,
		RevealAt:  reveal,
	}
}

// Status is the orchestrator's full read-only snapshot
type Status struct {
	State       State                  `json:"state"`
	Stake       int                    `json:"stake"`
	AutoSpin    bool                   `json:"auto_spin"`
	Turbo       bool                   `json:"turbo"`
	ThemeID     string                 `json:"theme_id"`
	Session     *SessionView           `json:"session,omitempty"`
	Economy     domain.EconomySnapshot `json:"economy"`
	LastOutcome *domain.SpinRecord     `json:"last_outcome,omitempty"`
}
