package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/WeaponPaints_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Store  *Store
}

// GracefulShutdown stops the HTTP server first so in-flight requests finish
// against an open store, then releases the store.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Store != nil {
		components.Store.Close()
		slog.Info(LogMsgStoreClosed)
	}

	slog.Info(LogMsgServerStopped)
}
