// Package gamedata provides the embedded companion roster and mode definitions.
package gamedata

import "embed"

// dataFS holds companions.json and modes.json.
//
//go:embed *.json
var dataFS embed.FS
