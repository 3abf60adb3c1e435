// Package sqlite implements the repositories on SQLite through sqlx and the
// pure Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/osse101/WeaponPaints_Go/internal/database/slots"
	"github.com/osse101/WeaponPaints_Go/internal/domain"
)

// Error Messages - Weapon Operations
const (
	ErrMsgFailedToQueryWeapons = "failed to query weapons"
	ErrMsgFailedToDecodeWeapon = "failed to decode weapon"
	ErrMsgFailedToEncodeWeapon = "failed to encode weapon"
	ErrMsgFailedToUpsertWeapon = "failed to upsert weapon"
	ErrMsgFailedToDeleteWeapon = "failed to delete weapon"
	ErrMsgFailedToPing         = "failed to ping database"
)

const upsertWeaponQuery = `
	INSERT INTO wp_player_skins (` + slots.Columns + `)
	VALUES (:steamid, :weapon_team, :weapon_defindex, :weapon_paint_id, :weapon_wear, :weapon_seed,
		:weapon_nametag, :weapon_stattrak, :weapon_stattrak_count,
		:weapon_sticker_0, :weapon_sticker_1, :weapon_sticker_2, :weapon_sticker_3, :weapon_sticker_4,
		:weapon_keychain)
	ON CONFLICT (steamid, weapon_team, weapon_defindex) DO UPDATE SET
		weapon_paint_id = excluded.weapon_paint_id,
		weapon_wear = excluded.weapon_wear,
		weapon_seed = excluded.weapon_seed,
		weapon_nametag = excluded.weapon_nametag,
		weapon_stattrak = excluded.weapon_stattrak,
		weapon_stattrak_count = excluded.weapon_stattrak_count,
		weapon_sticker_0 = excluded.weapon_sticker_0,
		weapon_sticker_1 = excluded.weapon_sticker_1,
		weapon_sticker_2 = excluded.weapon_sticker_2,
		weapon_sticker_3 = excluded.weapon_sticker_3,
		weapon_sticker_4 = excluded.weapon_sticker_4,
		weapon_keychain = excluded.weapon_keychain,
		updated_at = CURRENT_TIMESTAMP
`

// WeaponRepository implements repository.Weapon on SQLite
type WeaponRepository struct {
	db *sqlx.DB
}

// NewWeaponRepository creates a new weapon repository
func NewWeaponRepository(db *sqlx.DB) *WeaponRepository {
	return &WeaponRepository{db: db}
}

// ListWeapons returns all configurations stored for a player
func (r *WeaponRepository) ListWeapons(ctx context.Context, steamID string) ([]domain.WeaponConfig, error) {
	query := `
		SELECT ` + slots.Columns + `
		FROM wp_player_skins
		WHERE steamid = ?
		ORDER BY weapon_team, weapon_defindex
	`
	var rows []slots.Row
	if err := r.db.SelectContext(ctx, &rows, query, steamID); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToQueryWeapons, err)
	}

	weapons := make([]domain.WeaponConfig, 0, len(rows))
	for _, row := range rows {
		cfg, err := row.WeaponConfig()
		if err != nil {
			return nil, fmt.Errorf("%w: %s %d/%d: %w", domain.ErrDatabaseError, ErrMsgFailedToDecodeWeapon, row.Team, row.Defindex, err)
		}
		weapons = append(weapons, cfg)
	}
	return weapons, nil
}

// UpsertWeapon creates the configuration or replaces the stored one in a single statement
func (r *WeaponRepository) UpsertWeapon(ctx context.Context, cfg domain.WeaponConfig) error {
	row, err := slots.NewRow(cfg)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToEncodeWeapon, err)
	}
	if _, err := r.db.NamedExecContext(ctx, upsertWeaponQuery, row); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToUpsertWeapon, err)
	}
	return nil
}

// DeleteWeapon removes one configuration and reports how many rows were removed
func (r *WeaponRepository) DeleteWeapon(ctx context.Context, steamID string, team, defindex int) (int64, error) {
	query := `
		DELETE FROM wp_player_skins
		WHERE steamid = ? AND weapon_team = ? AND weapon_defindex = ?
	`
	res, err := r.db.ExecContext(ctx, query, steamID, team, defindex)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToDeleteWeapon, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToDeleteWeapon, err)
	}
	return n, nil
}

// Ping checks the database handle
func (r *WeaponRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToPing, err)
	}
	return nil
}
