// Package migrations ships the schema as forward-only SQL files compiled
// into the binary, so a deployment never needs migration tooling next to
// the executable.
package migrations

import "embed"

// Files holds every versioned .sql file; internal/db applies them in
// version order at startup and records each in schema_migrations.
//
//go:embed *.sql
var Files embed.FS
