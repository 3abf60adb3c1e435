package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/WeaponPaints_Go/internal/database"
	"github.com/osse101/WeaponPaints_Go/internal/domain"
)

// startPostgres runs a throwaway PostgreSQL container with the schema applied
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
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
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("Skipping integration test, postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPool(connStr, 10, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.MigratePool(ctx, pool))
	return pool
}

func TestWeaponRepository_Integration(t *testing.T) {
	pool := startPostgres(t)
	repo := NewWeaponRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Ping(ctx))

	weapons, err := repo.ListWeapons(ctx, testSteamID)
	require.NoError(t, err)
	assert.Empty(t, weapons)

	ak := domain.WeaponConfig{
		SteamID:       testSteamID,
		Team:          domain.TeamTerrorist,
		Defindex:      7,
		PaintID:       38,
		Wear:          0.0123456789,
		Seed:          661,
		Nametag:       strPtr("My AK"),
		StatTrak:      true,
		StatTrakCount: 1337,
		Stickers: []domain.Sticker{
			{ID: 1, X: 0.25, Y: 0.75, Scale: 1},
			{ID: 2, Schema: 1, Wear: 0.1, Scale: 1.5, Rotation: 90},
		},
		Keychain: &domain.Keychain{ID: 3, X: 1.5, Y: -2, Z: 0.25, Seed: 100},
	}
	awp := domain.WeaponConfig{
		SteamID:  testSteamID,
		Team:     domain.TeamCounterTerrorist,
		Defindex: 9,
		Wear:     domain.DefaultWear,
		Stickers: []domain.Sticker{},
	}
	require.NoError(t, repo.UpsertWeapon(ctx, awp))
	require.NoError(t, repo.UpsertWeapon(ctx, ak))

	weapons, err = repo.ListWeapons(ctx, testSteamID)
	require.NoError(t, err)
	require.Len(t, weapons, 2)
	assert.Equal(t, ak, weapons[0])
	assert.Equal(t, awp, weapons[1])

	// Upsert replaces every value column
	ak.PaintID = 44
	ak.Nametag = nil
	ak.StatTrak = false
	ak.StatTrakCount = 0
	ak.Stickers = []domain.Sticker{}
	ak.Keychain = nil
	require.NoError(t, repo.UpsertWeapon(ctx, ak))

	weapons, err = repo.ListWeapons(ctx, testSteamID)
	require.NoError(t, err)
	require.Len(t, weapons, 2)
	assert.Equal(t, ak, weapons[0])

	removed, err := repo.DeleteWeapon(ctx, testSteamID, domain.TeamTerrorist, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = repo.DeleteWeapon(ctx, testSteamID, domain.TeamTerrorist, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestWeaponRepository_Integration_CheckConstraint(t *testing.T) {
	pool := startPostgres(t)
	repo := NewWeaponRepository(pool)

	err := repo.UpsertWeapon(context.Background(), domain.WeaponConfig{
		SteamID:  testSteamID,
		Team:     1,
		Defindex: 7,
		Stickers: []domain.Sticker{},
	})
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
	assert.Contains(t, err.Error(), "rejected by storage")
}

func TestWeaponRepository_Integration_ConcurrentUpserts(t *testing.T) {
	pool := startPostgres(t)
	repo := NewWeaponRepository(pool)
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(paint int) {
			defer wg.Done()
			errs <- repo.UpsertWeapon(ctx, domain.WeaponConfig{
				SteamID:  testSteamID,
				Team:     domain.TeamTerrorist,
				Defindex: 7,
				PaintID:  paint,
				Wear:     domain.DefaultWear,
				Nametag:  strPtr(fmt.Sprintf("writer %d", paint)),
				Stickers: []domain.Sticker{},
			})
		}(i + 1)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	weapons, err := repo.ListWeapons(ctx, testSteamID)
	require.NoError(t, err)
	require.Len(t, weapons, 1)
	assert.Equal(t, fmt.Sprintf("writer %d", weapons[0].PaintID), *weapons[0].Nametag)
}
