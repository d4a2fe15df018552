// Package migrations berisi schema SQL yang dijalankan goose saat start.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
