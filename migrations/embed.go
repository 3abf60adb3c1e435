// Package migrations embeds the goose SQL migrations for every supported driver.
// Each driver has its own directory named after it.
package migrations

import "embed"

// FS holds postgres/*.sql and sqlite/*.sql
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
