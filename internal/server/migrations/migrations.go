// Package migrations embeds the SQL migration files applied with goose at
// server startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
