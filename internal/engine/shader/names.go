package shader

// Vertex attributes every mesh may supply.
const (
	AttrPosition = "aVertexPosition"
	AttrNormal   = "aNormal"
	AttrUV       = "aUV"
)

// Uniforms written by the renderer.
const (
	UniformProjection   = "uProjectionMatrix"
	UniformView         = "uViewMatrix"
	UniformModel        = "uModelMatrix"
	UniformViewPosition = "uViewPosition"
	UniformLight        = "uLightPosition"
	UniformColor        = "uColor"
	UniformKa           = "uKa"
	UniformKd           = "uKd"
	UniformKs           = "uKs"
	UniformShininess    = "uShininess"
	UniformUseTexture   = "uUseTexture"
	UniformTexture      = "uTexture"
)
