// Package migrations embeds the SQL schema migrations into the binary.
package migrations

import "embed"

// FS holds every goose migration file at its root.
//
//go:embed *.sql
var FS embed.FS
