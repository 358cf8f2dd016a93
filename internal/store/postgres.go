package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
)

type postgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL-backed repository
func NewPostgresRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) SaveSpin(ctx context.Context, record domain.SpinRecord) error {
	query := `
		INSERT INTO spins (session_id, stake, total_payout, tier, is_win, grid_symbols, outcome, settled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (session_id) DO NOTHING
	`

	gridJSON, err := json.Marshal(record.GridSymbols)
	if err != nil {
		return fmt.Errorf("failed to marshal grid symbols: %w", err)
	}
	outcomeJSON, err := json.Marshal(record.Outcome)
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		record.SessionID,
		record.Outcome.Stake,
		record.Outcome.TotalPayout,
		string(record.Outcome.Tier),
		record.Outcome.IsWin,
		gridJSON,
		outcomeJSON,
		record.SettledAt,
	)
	return err
}

func (r *postgresRepository) RecentSpins(ctx context.Context, limit int) ([]domain.SpinRecord, error) {
	query := `
		SELECT session_id, grid_symbols, outcome, settled_at
		FROM spins
		ORDER BY settled_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.SpinRecord
	for rows.Next() {
		var record domain.SpinRecord
		var gridJSON, outcomeJSON []byte

		if err := rows.Scan(&record.SessionID, &gridJSON, &outcomeJSON, &record.SettledAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(gridJSON, &record.GridSymbols); err != nil {
			return nil, fmt.Errorf("failed to unmarshal grid symbols: %w", err)
		}
		if err := json.Unmarshal(outcomeJSON, &record.Outcome); err != nil {
			return nil, fmt.Errorf("failed to unmarshal outcome: %w", err)
		}

		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *postgresRepository) SaveSnapshot(ctx context.Context, snapshot domain.EconomySnapshot) error {
	// Single-row table; the engine has exactly one economy
	query := `
		INSERT INTO economy_snapshots (
			id, currency, energy, max_energy, level, experience,
			win_streak, total_spins, total_currency_earned, updated_at
		)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (id) DO UPDATE SET
			currency = EXCLUDED.currency,
			energy = EXCLUDED.energy,
			max_energy = EXCLUDED.max_energy,
			level = EXCLUDED.level,
			experience = EXCLUDED.experience,
			win_streak = EXCLUDED.win_streak,
			total_spins = EXCLUDED.total_spins,
			total_currency_earned = EXCLUDED.total_currency_earned,
			updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query,
		snapshot.Currency,
		snapshot.Energy,
		snapshot.MaxEnergy,
		snapshot.Level,
		snapshot.Experience,
		snapshot.WinStreak,
		snapshot.TotalSpins,
		snapshot.TotalCurrencyEarned,
	)
	return err
}

func (r *postgresRepository) LoadSnapshot(ctx context.Context) (domain.EconomySnapshot, bool, error) {
	query := `
		SELECT currency, energy, max_energy, level, experience,
		       win_streak, total_spins, total_currency_earned
		FROM economy_snapshots
		WHERE id = 1
	`

	var snapshot domain.EconomySnapshot
	err := r.db.QueryRow(ctx, query).Scan(
		&snapshot.Currency,
		&snapshot.Energy,
		&snapshot.MaxEnergy,
		&snapshot.Level,
		&snapshot.Experience,
		&snapshot.WinStreak,
		&snapshot.TotalSpins,
		&snapshot.TotalCurrencyEarned,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.EconomySnapshot{}, false, nil
	}
	if err != nil {
		return domain.EconomySnapshot{}, false, err
	}
	return snapshot, true, nil
}

func (r *postgresRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *postgresRepository) Close() {
	r.db.Close()
}
