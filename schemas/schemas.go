// Package schemas embeds the JSON Schemas shipped with milpbench.
package schemas

import _ "embed"

// ProjectSchemaJSON is the JSON Schema for .milpbench.yaml files.
//
//go:embed milpbench.schema.json
var ProjectSchemaJSON string
