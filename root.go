// Package hostadmin embeds assets shipped with the binary.
package hostadmin

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
