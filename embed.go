// Package domainwatch embeds static assets shipped with the binary.
package domainwatch

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
