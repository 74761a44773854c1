// Package migrations embeds the SQL schema migrations applied by
// internal/migration at startup.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
