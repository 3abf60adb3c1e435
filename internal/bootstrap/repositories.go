package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/WeaponPaints_Go/internal/config"
	"github.com/osse101/WeaponPaints_Go/internal/database"
	"github.com/osse101/WeaponPaints_Go/internal/database/postgres"
	"github.com/osse101/WeaponPaints_Go/internal/database/sqlite"
	"github.com/osse101/WeaponPaints_Go/internal/domain"
	"github.com/osse101/WeaponPaints_Go/internal/repository"
)

// Store is the opened weapon store for the configured driver. Weapons
// serves requests and DB is the database/sql handle migrations run on.
type Store struct {
	Driver  string
	Weapons repository.Weapon
	DB      *sql.DB

	close func()
}

// OpenStore connects to the store selected by cfg.DBDriver. Both drivers
// ping before returning.
func OpenStore(cfg *config.Config) (*Store, error) {
	switch cfg.DBDriver {
	case database.DriverPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, err
		}
		db := stdlib.OpenDBFromPool(pool)
		return &Store{
			Driver:  cfg.DBDriver,
			Weapons: postgres.NewWeaponRepository(pool),
			DB:      db,
			close: func() {
				_ = db.Close()
				pool.Close()
			},
		}, nil

	case database.DriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver:  cfg.DBDriver,
			Weapons: sqlite.NewWeaponRepository(db),
			DB:      db.DB,
			close:   func() { _ = db.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDriver, cfg.DBDriver)
	}
}

// Migrator returns a migrator over the store's database/sql handle
func (s *Store) Migrator() (*database.Migrator, error) {
	return database.NewMigrator(s.DB, s.Driver)
}

// Migrate applies pending embedded migrations for the store's driver
func (s *Store) Migrate(ctx context.Context) error {
	m, err := s.Migrator()
	if err != nil {
		return err
	}
	return m.Up(ctx)
}

// Close releases every connection held by the store
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}
