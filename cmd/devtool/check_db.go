package main

import (
	"context"
	"fmt"
	"time"
)

type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Check that the configured store answers and report its schema version"
}

func (c *CheckDBCommand) Run(args []string) error {
	cfg, store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	PrintHeader(fmt.Sprintf("Checking %s store...", cfg.DBDriver))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := store.Weapons.Ping(ctx); err != nil {
		return fmt.Errorf("store is not reachable: %w", err)
	}
	PrintSuccess("Store is reachable")

	m, err := store.Migrator()
	if err != nil {
		return err
	}
	version, err := m.Version(ctx)
	if err != nil {
		return err
	}
	if version == 0 {
		PrintWarning("No migrations applied. Run: devtool migrate up")
	} else {
		PrintInfo("Schema version %d", version)
	}

	PrintSuccess("Database check complete")
	return nil
}
