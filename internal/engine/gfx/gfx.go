// Package gfx defines the graphics capability the renderer draws through.
//
// Everything that touches GPU state goes through a Context: the active
// program, bound vertex arrays, buffers and textures are global mutable state
// owned by the underlying driver, so callers re-establish whatever they need
// before each draw instead of relying on earlier bindings.
package gfx

import "github.com/go-gl/mathgl/mgl32"

// BufferTarget selects the binding point of a buffer.
type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// Stage identifies a shader stage.
type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

// String returns the lowercase stage name used in logs and errors.
func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// Wrap is a texture coordinate wrap mode.
type Wrap int

const (
	WrapRepeat Wrap = iota
	WrapClampToEdge
)

// Filter is a texture sampling filter.
type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
	FilterLinearMipmapLinear
)

// Sampling holds the sampler parameters of a 2D texture.
type Sampling struct {
	Wrap      Wrap
	MinFilter Filter
	MagFilter Filter
}

// Context is the set of GPU commands available to the engine.
// Object handles are driver names; 0 means "none".
type Context interface {
	// Frame state
	SetClearColor(r, g, b, a float32)
	EnableDepthTest()
	Clear()
	Viewport(x, y, width, height int32)

	// Vertex layout and buffers
	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	CreateBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)
	BufferFloats(target BufferTarget, data []float32)
	BufferIndices(target BufferTarget, data []uint16)
	VertexAttribPointer(location uint32, components int32)
	EnableVertexAttribArray(location uint32)

	// Programs
	CreateShader(stage Stage) uint32
	CompileShader(shader uint32, source string) (ok bool, log string)
	DeleteShader(shader uint32)
	CreateProgram() uint32
	LinkProgram(program uint32, shaders ...uint32) (ok bool, log string)
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32

	// Uniforms on the program in use
	UniformMat4(location int32, m mgl32.Mat4)
	UniformVec3(location int32, v mgl32.Vec3)
	UniformFloat(location int32, v float32)
	UniformInt(location int32, v int32)

	// Textures
	CreateTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(texture uint32)
	TexImageRGBA(width, height int32, pix []uint8)
	GenerateMipmap()
	SetSampling(s Sampling)

	// DrawIndexedTriangles draws count 16-bit indices from the bound vertex array.
	DrawIndexedTriangles(count int32)

	// ReadPixels returns the RGBA contents of a framebuffer region, bottom row first.
	ReadPixels(x, y, width, height int32) []uint8
}
