// Package migrations holds the ordered schema files applied at start.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
