// Package migrations embeds the SQL schema migrations. The
// golang-migrate library reads these files via the iofs driver.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the highest migration this build expects to be applied.
const Version = 1
