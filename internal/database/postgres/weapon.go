package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/WeaponPaints_Go/internal/database/slots"
	"github.com/osse101/WeaponPaints_Go/internal/domain"
)

// WeaponRepository implements repository.Weapon on PostgreSQL
type WeaponRepository struct {
	db PgxPool
}

// NewWeaponRepository creates a new weapon repository
func NewWeaponRepository(db PgxPool) *WeaponRepository {
	return &WeaponRepository{db: db}
}

// ListWeapons returns all configurations stored for a player
func (r *WeaponRepository) ListWeapons(ctx context.Context, steamID string) ([]domain.WeaponConfig, error) {
	query := `
		SELECT ` + slots.Columns + `
		FROM wp_player_skins
		WHERE steamid = $1
		ORDER BY weapon_team, weapon_defindex
	`
	rows, err := r.db.Query(ctx, query, steamID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToQueryWeapons, err)
	}
	defer rows.Close()

	weapons := []domain.WeaponConfig{}
	for rows.Next() {
		var row slots.Row
		if err := rows.Scan(row.Dest()...); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToScanWeapon, err)
		}
		cfg, err := row.WeaponConfig()
		if err != nil {
			return nil, fmt.Errorf("%w: %s %d/%d: %w", domain.ErrDatabaseError, ErrMsgFailedToDecodeWeapon, row.Team, row.Defindex, err)
		}
		weapons = append(weapons, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToQueryWeapons, err)
	}
	return weapons, nil
}

// UpsertWeapon creates the configuration or replaces the stored one in a single statement
func (r *WeaponRepository) UpsertWeapon(ctx context.Context, cfg domain.WeaponConfig) error {
	row, err := slots.NewRow(cfg)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToEncodeWeapon, err)
	}

	query := `
		INSERT INTO wp_player_skins (` + slots.Columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (steamid, weapon_team, weapon_defindex) DO UPDATE SET
			weapon_paint_id = EXCLUDED.weapon_paint_id,
			weapon_wear = EXCLUDED.weapon_wear,
			weapon_seed = EXCLUDED.weapon_seed,
			weapon_nametag = EXCLUDED.weapon_nametag,
			weapon_stattrak = EXCLUDED.weapon_stattrak,
			weapon_stattrak_count = EXCLUDED.weapon_stattrak_count,
			weapon_sticker_0 = EXCLUDED.weapon_sticker_0,
			weapon_sticker_1 = EXCLUDED.weapon_sticker_1,
			weapon_sticker_2 = EXCLUDED.weapon_sticker_2,
			weapon_sticker_3 = EXCLUDED.weapon_sticker_3,
			weapon_sticker_4 = EXCLUDED.weapon_sticker_4,
			weapon_keychain = EXCLUDED.weapon_keychain,
			updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, row.Args()...); err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %s: team %d rejected by storage", domain.ErrDatabaseError, ErrMsgFailedToUpsertWeapon, cfg.Team)
		}
		return fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToUpsertWeapon, err)
	}
	return nil
}

// DeleteWeapon removes one configuration and reports how many rows were removed
func (r *WeaponRepository) DeleteWeapon(ctx context.Context, steamID string, team, defindex int) (int64, error) {
	query := `
		DELETE FROM wp_player_skins
		WHERE steamid = $1 AND weapon_team = $2 AND weapon_defindex = $3
	`
	tag, err := r.db.Exec(ctx, query, steamID, team, defindex)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToDeleteWeapon, err)
	}
	return tag.RowsAffected(), nil
}

// Ping checks the connection pool
func (r *WeaponRepository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgFailedToPing, err)
	}
	return nil
}

func isCheckViolation(err error) bool {
	var pg *pgconn.PgError
	return errors.As(err, &pg) && pg.Code == PgErrorCodeCheckViolation
}
