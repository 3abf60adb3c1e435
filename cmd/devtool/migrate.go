package main

import (
	"context"
	"fmt"
)

const (
	migrateUp      = "up"
	migrateDown    = "down"
	migrateStatus  = "status"
	migrateVersion = "version"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status, version)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status, version")
	}
	subcmd := args[0]
	switch subcmd {
	case migrateUp, migrateDown, migrateStatus, migrateVersion:
	default:
		return fmt.Errorf("unknown migrate subcommand %q", subcmd)
	}

	cfg, store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	m, err := store.Migrator()
	if err != nil {
		return err
	}

	ctx := context.Background()
	PrintHeader(fmt.Sprintf("Migrations (%s, %s)", cfg.DBDriver, subcmd))

	switch subcmd {
	case migrateUp:
		if err := m.Up(ctx); err != nil {
			return err
		}
	case migrateDown:
		if err := m.Down(ctx); err != nil {
			return err
		}
	case migrateStatus:
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			state := "pending"
			if !s.AppliedAt.IsZero() {
				state = "applied " + s.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Printf("  %05d  %-40s %s\n", s.Source.Version, s.Source.Path, state)
		}
		return nil
	}

	version, err := m.Version(ctx)
	if err != nil {
		return err
	}
	PrintSuccess("Database at version %d", version)
	return nil
}
