// Package migrations holds the SQL schema applied at startup.
package migrations

import "embed"

// Files contains every *.sql migration, applied in lexical order
//
//go:embed *.sql
var Files embed.FS
