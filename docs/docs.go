// Package docs carries the served API description.
package docs

import _ "embed"

//go:embed openapi.yaml
var OpenAPIYAML []byte
