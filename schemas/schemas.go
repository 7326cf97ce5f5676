// Package schemas embeds the JSON Schema documents for job extraction and the
// /generate response.
package schemas

import "embed"

// Files holds every *.schema.json in this directory.
//
//go:embed *.schema.json
var Files embed.FS

// Schema file names.
const (
	Jobs             = "jobs.schema.json"
	GenerateResponse = "generate_response.schema.json"
)
