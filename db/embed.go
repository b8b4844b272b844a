// Package db embeds the SQL migrations so production builds can run them
// without the source tree present. Built with the embed_migrations tag.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
