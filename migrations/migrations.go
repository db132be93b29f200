// Package migrations embeds the goose SQL migrations for every bounded context.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed inventory/*.sql
var files embed.FS

// Inventory returns the inventory context's migrations rooted at the FS top level.
func Inventory() fs.FS {
	sub, err := fs.Sub(files, "inventory")
	if err != nil {
		// fs.Sub only fails on an invalid path; "inventory" is a constant.
		panic(err)
	}
	return sub
}
