package bootstrap

import "time"

// ShutdownTimeout bounds graceful shutdown of the HTTP server
const ShutdownTimeout = 15 * time.Second

// Log messages
const (
	LogMsgStarting             = "Starting WeaponPaints API"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoreClosed          = "Database connections closed"
	LogMsgServerStopped        = "Server stopped"
)
