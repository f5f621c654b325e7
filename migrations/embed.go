// Package migrations holds the application schema as ordered SQL files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
