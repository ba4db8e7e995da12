// Package assets embeds the default shader sources.
package assets

import "embed"

// FS holds shader/vertex.expr and shader/fragment.expr.
//
//go:embed shader/*.expr
var FS embed.FS

const (
	VertexShaderPath   = "shader/vertex.expr"
	FragmentShaderPath = "shader/fragment.expr"
)
