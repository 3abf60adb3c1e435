package config

import "time"

// Defaults for optional settings
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "weapon-paints"
	DefaultVersion     = "dev"

	DefaultDBName            = "weaponpaints"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultSQLitePath        = "weaponpaints.db"
)

// MinJWTSecretLength is the shortest secret that does not produce a warning
const MinJWTSecretLength = 32
