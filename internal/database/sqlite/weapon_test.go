package sqlite

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WeaponPaints_Go/internal/database"
	"github.com/osse101/WeaponPaints_Go/internal/domain"
)

const testSteamID = "76561198000000001"

func strPtr(s string) *string { return &s }

func setupRepo(t *testing.T) (*WeaponRepository, *sqlx.DB) {
	t.Helper()
	db, err := database.OpenSQLite(database.SQLiteMemory)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.MigrateSQLite(context.Background(), db.DB))
	return NewWeaponRepository(db), db
}

func fullConfig() domain.WeaponConfig {
	return domain.WeaponConfig{
		SteamID:       testSteamID,
		Team:          domain.TeamTerrorist,
		Defindex:      7,
		PaintID:       12,
		Wear:          0.15,
		Seed:          123,
		Nametag:       strPtr("My AK"),
		StatTrak:      true,
		StatTrakCount: 42,
		Stickers: []domain.Sticker{
			{ID: 1, Schema: 0, X: 0.5, Y: 0.5, Wear: 0, Scale: 1, Rotation: 0},
			{ID: 2, Schema: 0, X: 0.3, Y: 0.7, Wear: 0.1, Scale: 1.2, Rotation: 45},
		},
		Keychain: &domain.Keychain{ID: 1, X: 0, Y: 0, Z: 0, Seed: 100},
	}
}

func TestWeaponRepository_UpsertAndList(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	want := fullConfig()
	require.NoError(t, repo.UpsertWeapon(ctx, want))

	got, err := repo.ListWeapons(ctx, testSteamID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Errorf("stored config mismatch (-want +got):\n%s", diff)
	}
}

func TestWeaponRepository_ListWeapons_EmptyAndOrdered(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	empty, err := repo.ListWeapons(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, key := range []struct{ team, def int }{{3, 9}, {2, 60}, {2, 7}, {3, 1}} {
		cfg := domain.WeaponConfig{SteamID: testSteamID, Team: key.team, Defindex: key.def, Wear: domain.DefaultWear, Stickers: []domain.Sticker{}}
		require.NoError(t, repo.UpsertWeapon(ctx, cfg))
	}
	// Another player's row never leaks into the listing
	require.NoError(t, repo.UpsertWeapon(ctx, domain.WeaponConfig{SteamID: "other", Team: 2, Defindex: 7, Stickers: []domain.Sticker{}}))

	got, err := repo.ListWeapons(ctx, testSteamID)
	require.NoError(t, err)
	require.Len(t, got, 4)

	var keys [][2]int
	for _, w := range got {
		keys = append(keys, [2]int{w.Team, w.Defindex})
	}
	assert.Equal(t, [][2]int{{2, 7}, {2, 60}, {3, 1}, {3, 9}}, keys)
}

func TestWeaponRepository_UpsertReplacesWholeRow(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertWeapon(ctx, fullConfig()))

	replacement := domain.WeaponConfig{
		SteamID:  testSteamID,
		Team:     domain.TeamTerrorist,
		Defindex: 7,
		PaintID:  44,
		Wear:     domain.DefaultWear,
		Stickers: []domain.Sticker{},
	}
	require.NoError(t, repo.UpsertWeapon(ctx, replacement))

	got, err := repo.ListWeapons(ctx, testSteamID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	if diff := cmp.Diff(replacement, got[0]); diff != "" {
		t.Errorf("replaced config mismatch (-want +got):\n%s", diff)
	}

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM wp_player_skins`))
	assert.Equal(t, 1, count)
}

func TestWeaponRepository_DeleteWeapon(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertWeapon(ctx, fullConfig()))

	n, err := repo.DeleteWeapon(ctx, testSteamID, 2, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.DeleteWeapon(ctx, testSteamID, 2, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	got, err := repo.ListWeapons(ctx, testSteamID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWeaponRepository_CorruptedRow(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `
		INSERT INTO wp_player_skins (steamid, weapon_team, weapon_defindex, weapon_sticker_2)
		VALUES (?, 2, 7, 'broken')
	`, testSteamID)
	require.NoError(t, err)

	_, err = repo.ListWeapons(ctx, testSteamID)
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
	assert.ErrorIs(t, err, domain.ErrCorruptedSlot)
}

func TestWeaponRepository_StorageRejectsBadTeam(t *testing.T) {
	repo, _ := setupRepo(t)

	err := repo.UpsertWeapon(context.Background(), domain.WeaponConfig{SteamID: testSteamID, Team: 1, Defindex: 7})
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
}

func TestWeaponRepository_ConcurrentUpserts(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(paint int) {
			defer wg.Done()
			cfg := domain.WeaponConfig{SteamID: testSteamID, Team: 3, Defindex: 9, PaintID: paint, Stickers: []domain.Sticker{}}
			if err := repo.UpsertWeapon(ctx, cfg); err != nil {
				t.Errorf("upsert %d: %v", paint, err)
			}
		}(i)
	}
	wg.Wait()

	got, err := repo.ListWeapons(ctx, testSteamID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestWeaponRepository_Ping(t *testing.T) {
	repo, db := setupRepo(t)
	assert.NoError(t, repo.Ping(context.Background()))

	require.NoError(t, db.Close())
	assert.ErrorIs(t, repo.Ping(context.Background()), domain.ErrDatabaseError)
}
