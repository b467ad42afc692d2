// Package migrations embarque les fichiers SQL de schéma appliqués par goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
