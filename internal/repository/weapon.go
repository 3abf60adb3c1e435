package repository

import (
	"context"

	"github.com/osse101/WeaponPaints_Go/internal/domain"
)

// Weapon defines data access for player weapon configurations.
// Implementations wrap storage failures with domain.ErrDatabaseError.
type Weapon interface {
	// ListWeapons returns every configuration owned by steamID ordered by team
	// then defindex. An owner with nothing stored yields an empty slice.
	ListWeapons(ctx context.Context, steamID string) ([]domain.WeaponConfig, error)

	// UpsertWeapon inserts the configuration or replaces every value column of
	// the existing row with the same key, in one statement.
	UpsertWeapon(ctx context.Context, cfg domain.WeaponConfig) error

	// DeleteWeapon removes the row with the given key and reports rows affected
	DeleteWeapon(ctx context.Context, steamID string, team, defindex int) (int64, error)

	// Ping checks that the store is reachable
	Ping(ctx context.Context) error
}
