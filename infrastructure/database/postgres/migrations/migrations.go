// Package migrations embute os scripts SQL do esquema do hotel
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
