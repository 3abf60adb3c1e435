package bootstrap

import (
	"log/slog"

	"github.com/osse101/WeaponPaints_Go/internal/config"
	"github.com/osse101/WeaponPaints_Go/internal/logger"
)

// SetupLogger installs the process logger described by cfg and logs the
// effective startup configuration. Secrets are never logged.
func SetupLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_driver", cfg.DBDriver,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"sqlite_path", cfg.SQLitePath,
		"auto_migrate", cfg.AutoMigrate,
		"trusted_proxies", cfg.TrustedProxies,
		"port", cfg.Port)
}
