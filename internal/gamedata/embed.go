// Package gamedata provides the embedded balance data for the field, the
// player, the enemies, the tower and the economy.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
