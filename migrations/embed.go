package migrations

import "embed"

// Files holds the forward-only schema migrations, applied in numeric order.
//
//go:embed *.sql
var Files embed.FS
