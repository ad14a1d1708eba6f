// Package collection embeds the PostgreSQL migrations for the collection storage backend.
package collection

import "embed"

// FS holds the goose migration files.
//
//go:embed *.sql
var FS embed.FS
