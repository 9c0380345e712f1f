// Package static embeds the API documentation served under /docs and /static.
package static

import "embed"

const (
	OpenAPIUI       = "openapi.html"
	OpenAPIDocument = "openapi.json"
)

//go:embed openapi.html openapi.json
var Files embed.FS
