// Package schemas holds the JSON Schema documents shipped with roster-summary.
package schemas

import _ "embed"

// Config is the JSON Schema for config files.
//
//go:embed config.schema.json
var Config string
