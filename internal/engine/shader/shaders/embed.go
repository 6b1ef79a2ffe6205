// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PhongVertexShader transforms positions and passes world-space normals and UVs on.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader shades with ambient, diffuse and specular terms and an optional texture.
//
//go:embed phong.frag
var PhongFragmentShader string
