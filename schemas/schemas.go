// Package schemas embeds the JSON Schemas shipped with veldbench.
package schemas

import _ "embed"

// ResultSchemaJSON is the JSON Schema for JMH benchmark result files.
//
//go:embed jmh-result.schema.json
var ResultSchemaJSON string
