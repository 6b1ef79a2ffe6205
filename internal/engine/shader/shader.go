// Package shader compiles GLSL programs and sets their uniforms by name.
package shader

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/luxo/internal/engine/gfx"
	"github.com/Faultbox/luxo/internal/engine/shader/shaders"
)

// NotPresent is the location reported for uniforms and attributes the program does not declare.
const NotPresent int32 = -1

// ErrMissingSource is returned when a configured shader file cannot be found.
var ErrMissingSource = errors.New("shader source not found")

// CompileError reports a failed compile or link step.
type CompileError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: %s", e.Stage, e.Log)
}

// Program is a linked shader program with a cache of uniform locations.
type Program struct {
	ctx      gfx.Context
	id       uint32
	uniforms map[string]int32
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Failures are returned as *CompileError.
func CompileProgram(ctx gfx.Context, vertexSrc, fragmentSrc string) (*Program, error) {
	vert, err := compileShader(ctx, gfx.VertexStage, vertexSrc)
	if err != nil {
		return nil, err
	}
	defer ctx.DeleteShader(vert)

	frag, err := compileShader(ctx, gfx.FragmentStage, fragmentSrc)
	if err != nil {
		return nil, err
	}
	defer ctx.DeleteShader(frag)

	id := ctx.CreateProgram()
	if ok, log := ctx.LinkProgram(id, vert, frag); !ok {
		ctx.DeleteProgram(id)
		return nil, &CompileError{Stage: "link", Log: log}
	}

	return &Program{
		ctx:      ctx,
		id:       id,
		uniforms: make(map[string]int32),
	}, nil
}

// compileShader compiles a single shader of the given stage.
func compileShader(ctx gfx.Context, stage gfx.Stage, source string) (uint32, error) {
	s := ctx.CreateShader(stage)
	if ok, log := ctx.CompileShader(s, source); !ok {
		ctx.DeleteShader(s)
		return 0, &CompileError{Stage: stage.String(), Log: log}
	}
	return s, nil
}

// LoadSources returns the vertex and fragment sources to compile.
// Empty paths select the embedded Phong program.
func LoadSources(vertexPath, fragmentPath string) (vertex, fragment string, err error) {
	vertex, err = readSource(vertexPath, shaders.PhongVertexShader)
	if err != nil {
		return "", "", err
	}
	fragment, err = readSource(fragmentPath, shaders.PhongFragmentShader)
	if err != nil {
		return "", "", err
	}
	return vertex, fragment, nil
}

func readSource(path, fallback string) (string, error) {
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrMissingSource, path)
	}
	if err != nil {
		return "", fmt.Errorf("reading shader %s: %w", path, err)
	}
	return string(data), nil
}

// ID returns the driver handle of the program.
func (p *Program) ID() uint32 { return p.id }

// Use makes the program current.
func (p *Program) Use() { p.ctx.UseProgram(p.id) }

// Delete releases the program.
func (p *Program) Delete() { p.ctx.DeleteProgram(p.id) }

// AttribLocation returns the attribute location, or NotPresent.
func (p *Program) AttribLocation(name string) int32 {
	if loc := p.ctx.AttribLocation(p.id, name); loc >= 0 {
		return loc
	}
	return NotPresent
}

// Uniform returns the uniform location, or NotPresent when the program
// does not declare it (or the compiler optimized it away).
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := p.ctx.UniformLocation(p.id, name)
	if loc < 0 {
		loc = NotPresent
	}
	p.uniforms[name] = loc
	return loc
}

// Has reports whether the program declares the uniform.
func (p *Program) Has(name string) bool {
	return p.Uniform(name) != NotPresent
}

// SetMat4 sets a mat4 uniform on the current program. Missing uniforms are ignored.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.Uniform(name); loc != NotPresent {
		p.ctx.UniformMat4(loc, m)
	}
}

// SetVec3 sets a vec3 uniform on the current program. Missing uniforms are ignored.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.Uniform(name); loc != NotPresent {
		p.ctx.UniformVec3(loc, v)
	}
}

// SetFloat sets a float uniform on the current program. Missing uniforms are ignored.
func (p *Program) SetFloat(name string, v float32) {
	if loc := p.Uniform(name); loc != NotPresent {
		p.ctx.UniformFloat(loc, v)
	}
}

// SetInt sets an int, bool or sampler uniform on the current program. Missing uniforms are ignored.
func (p *Program) SetInt(name string, v int32) {
	if loc := p.Uniform(name); loc != NotPresent {
		p.ctx.UniformInt(loc, v)
	}
}

// SetBool sets a boolean flag uniform as 0 or 1.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}
