// Package gamedata provides the embedded occupant definitions used to seed
// locations, and weighted tables for drawing from them.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
