// Package opengl implements gfx.Context on top of OpenGL 4.1 core.
package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/luxo/internal/engine/gfx"
)

// Context issues gfx commands to the current OpenGL context.
type Context struct{}

var _ gfx.Context = (*Context)(nil)

// New loads the OpenGL function pointers.
// IMPORTANT: Must be called AFTER the window has made its GL context current!
func New(log *zap.Logger) (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)
	return &Context{}, nil
}

func (c *Context) SetClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (c *Context) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
}

func (c *Context) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT) }

func (c *Context) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (c *Context) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (c *Context) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (c *Context) CreateBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (c *Context) BindBuffer(target gfx.BufferTarget, buffer uint32) {
	gl.BindBuffer(bufferTarget(target), buffer)
}

func (c *Context) BufferFloats(target gfx.BufferTarget, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BufferData(bufferTarget(target), len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (c *Context) BufferIndices(target gfx.BufferTarget, data []uint16) {
	if len(data) == 0 {
		return
	}
	gl.BufferData(bufferTarget(target), len(data)*2, gl.Ptr(data), gl.STATIC_DRAW)
}

// VertexAttribPointer describes a tightly packed float attribute in the bound array buffer.
func (c *Context) VertexAttribPointer(location uint32, components int32) {
	gl.VertexAttribPointerWithOffset(location, components, gl.FLOAT, false, 0, 0)
}

func (c *Context) EnableVertexAttribArray(location uint32) { gl.EnableVertexAttribArray(location) }

func (c *Context) CreateShader(stage gfx.Stage) uint32 {
	if stage == gfx.FragmentStage {
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return gl.CreateShader(gl.VERTEX_SHADER)
}

func (c *Context) CompileShader(shader uint32, source string) (bool, string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
	return false, strings.TrimRight(log, "\x00")
}

func (c *Context) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (c *Context) CreateProgram() uint32 { return gl.CreateProgram() }

func (c *Context) LinkProgram(program uint32, shaders ...uint32) (bool, string) {
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(program, logLen, nil, gl.Str(log))
	return false, strings.TrimRight(log, "\x00")
}

func (c *Context) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (c *Context) UseProgram(program uint32) { gl.UseProgram(program) }

func (c *Context) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) UniformMat4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (c *Context) UniformVec3(location int32, v mgl32.Vec3) {
	gl.Uniform3f(location, v[0], v[1], v[2])
}

func (c *Context) UniformFloat(location int32, v float32) { gl.Uniform1f(location, v) }

func (c *Context) UniformInt(location int32, v int32) { gl.Uniform1i(location, v) }

func (c *Context) CreateTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (c *Context) ActiveTexture(unit uint32) { gl.ActiveTexture(gl.TEXTURE0 + unit) }

func (c *Context) BindTexture(texture uint32) { gl.BindTexture(gl.TEXTURE_2D, texture) }

func (c *Context) TexImageRGBA(width, height int32, pix []uint8) {
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
}

func (c *Context) GenerateMipmap() { gl.GenerateMipmap(gl.TEXTURE_2D) }

func (c *Context) SetSampling(s gfx.Sampling) {
	wrap := int32(gl.REPEAT)
	if s.Wrap == gfx.WrapClampToEdge {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter(s.MinFilter))
	// Mipmapped filters are only valid for minification.
	mag := s.MagFilter
	if mag == gfx.FilterLinearMipmapLinear {
		mag = gfx.FilterLinear
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter(mag))
}

func (c *Context) DrawIndexedTriangles(count int32) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, count, gl.UNSIGNED_SHORT, 0)
}

func (c *Context) ReadPixels(x, y, width, height int32) []uint8 {
	pix := make([]uint8, int(width)*int(height)*4)
	if len(pix) == 0 {
		return pix
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return pix
}

func bufferTarget(t gfx.BufferTarget) uint32 {
	if t == gfx.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func filter(f gfx.Filter) int32 {
	switch f {
	case gfx.FilterLinear:
		return gl.LINEAR
	case gfx.FilterLinearMipmapLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	default:
		return gl.NEAREST
	}
}
