package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/database"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
)

func TestPostgresRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()

	if pgContainer == nil {
		if err != nil {
			t.Fatalf("failed to start postgres container: %v", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %v", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(connStr))

	pool, err := database.NewPool(connStr)
	require.NoError(t, err)
	defer pool.Close()

	repo := NewPostgresRepository(pool)

	t.Run("SaveSpin And RecentSpins", func(t *testing.T) {
		first := domain.SpinRecord{
			SessionID: uuid.NewString(),
			Outcome: domain.SpinOutcome{
				Stake:       100,
				TotalPayout: 700,
				Tier:        domain.TierJackpot,
				IsWin:       true,
				Wins: []domain.WinResult{
					{LineID: "middle_row", LineWeight: 1.0, RawPayout: 500},
				},
			},
			GridSymbols: []string{"lucky_coin", "lucky_coin", "lucky_coin"},
			SettledAt:   time.Now().UTC().Truncate(time.Second),
		}
		second := domain.SpinRecord{
			SessionID:   uuid.NewString(),
			Outcome:     domain.SpinOutcome{Stake: 100, Tier: domain.TierNone},
			GridSymbols: []string{"bamboo_stalk"},
			SettledAt:   first.SettledAt.Add(time.Second),
		}

		require.NoError(t, repo.SaveSpin(ctx, first))
		require.NoError(t, repo.SaveSpin(ctx, second))

		// Duplicate session IDs are ignored
		require.NoError(t, repo.SaveSpin(ctx, first))

		recent, err := repo.RecentSpins(ctx, 10)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, second.SessionID, recent[0].SessionID)
		assert.Equal(t, first.SessionID, recent[1].SessionID)
		assert.Equal(t, 700, recent[1].Outcome.TotalPayout)
		assert.Equal(t, []string{"lucky_coin", "lucky_coin", "lucky_coin"}, recent[1].GridSymbols)
		require.Len(t, recent[1].Outcome.Wins, 1)
		assert.Equal(t, "middle_row", recent[1].Outcome.Wins[0].LineID)
	})

	t.Run("Snapshot Upsert And Load", func(t *testing.T) {
		_, found, err := repo.LoadSnapshot(ctx)
		require.NoError(t, err)
		assert.False(t, found)

		snapshot := domain.EconomySnapshot{
			Currency: 9500, Energy: 4, MaxEnergy: 10,
			Level: 2, Experience: 150, ExperienceToNext: 2000,
			WinStreak: 1, TotalSpins: 12, TotalCurrencyEarned: 3400,
		}
		require.NoError(t, repo.SaveSnapshot(ctx, snapshot))

		snapshot.Currency = 8800
		snapshot.TotalSpins = 13
		require.NoError(t, repo.SaveSnapshot(ctx, snapshot))

		got, found, err := repo.LoadSnapshot(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 8800, got.Currency)
		assert.Equal(t, int64(13), got.TotalSpins)
		assert.Equal(t, 2, got.Level)
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, repo.Ping(ctx))
	})
}
