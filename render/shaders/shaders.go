package shaders

import (
	_ "embed"
)

//go:embed gizmo.wgsl
var GizmoWGSL string

//go:embed text.wgsl
var TextWGSL string
