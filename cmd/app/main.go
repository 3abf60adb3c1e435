// @title WeaponPaints API
// @version 1.0
// @description Stores per-player weapon skin configurations (paint, wear, seed, nametag, StatTrak, stickers, keychain).
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	_ "github.com/osse101/WeaponPaints_Go/docs"
	"github.com/osse101/WeaponPaints_Go/internal/auth"
	"github.com/osse101/WeaponPaints_Go/internal/bootstrap"
	"github.com/osse101/WeaponPaints_Go/internal/config"
	"github.com/osse101/WeaponPaints_Go/internal/server"
	"github.com/osse101/WeaponPaints_Go/internal/validation"
	"github.com/osse101/WeaponPaints_Go/internal/weapon"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment validation failed", "error", err)
	}
	for _, warning := range warnings {
		slog.Warn("Configuration warning", "warning", warning)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(cfg)
	if err != nil {
		return err
	}

	if cfg.AutoMigrate {
		if err := store.Migrate(ctx); err != nil {
			store.Close()
			return err
		}
	}

	srv := server.NewServer(
		cfg.Port,
		cfg.TrustedProxies,
		auth.NewVerifier(cfg.JWTSecret),
		store.Weapons,
		weapon.NewService(store.Weapons),
		validation.NewSchemaValidator(),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, Store: store})
		return nil
	})

	return g.Wait()
}
