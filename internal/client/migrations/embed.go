// Package migrations embeds the schema for the console's local database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
