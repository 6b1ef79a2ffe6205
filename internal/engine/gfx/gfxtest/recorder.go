// Package gfxtest provides a recording gfx.Context for tests that run without a GPU.
//
// The recorder behaves like a minimal driver: it parses attribute and uniform
// declarations out of GLSL source to hand out locations, rejects sources that
// have no entry point, keeps uploaded buffer and texture data, and snapshots
// the uniform state of every draw call.
package gfxtest

import (
	"math"
	"regexp"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/luxo/internal/engine/gfx"
)

var (
	attribDecl  = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?in\s+\w+\s+(\w+)\s*;`)
	uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)
)

// Attrib is the recorded state of one vertex attribute slot of a vertex array.
type Attrib struct {
	Buffer     uint32
	Components int32
	Enabled    bool
}

// VertexArray is the recorded state of a vertex array object.
type VertexArray struct {
	Attribs       map[uint32]*Attrib
	ElementBuffer uint32
}

// Buffer holds uploaded buffer contents.
type Buffer struct {
	Floats  []float32
	Indices []uint16
}

// Texture holds uploaded texture state.
type Texture struct {
	Width, Height int32
	Pix           []uint8
	Mipmapped     bool
	Sampling      gfx.Sampling
}

// Draw is a snapshot taken at each DrawIndexedTriangles call.
type Draw struct {
	VertexArray uint32
	Count       int32
	Program     uint32
	Texture     uint32 // bound to unit 0
	// Uniforms holds every uniform value of the program at draw time, by name.
	Uniforms map[string]any
	// Written lists uniforms written since the previous draw (or since the program was bound).
	Written map[string]bool
}

type shaderObj struct {
	stage    gfx.Stage
	source   string
	compiled bool
}

type programObj struct {
	linked   bool
	attribs  map[string]int32
	uniforms map[string]int32
	names    map[int32]string
	values   map[string]any
}

// Recorder is a gfx.Context that records instead of rendering.
type Recorder struct {
	// FailLink makes every LinkProgram call fail.
	FailLink bool

	Calls        []string
	Clears       int
	ClearColor   [4]float32
	DepthTest    bool
	ViewportSize [4]int32
	Draws        []Draw

	VertexArrays map[uint32]*VertexArray
	Buffers      map[uint32]*Buffer
	Textures     map[uint32]*Texture

	nextID     uint32
	shaders    map[uint32]*shaderObj
	programs   map[uint32]*programObj
	boundVAO   uint32
	boundArray uint32
	boundElem  uint32
	program    uint32
	activeUnit uint32
	units      map[uint32]uint32
	written    map[string]bool
}

var _ gfx.Context = (*Recorder)(nil)

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{
		VertexArrays: make(map[uint32]*VertexArray),
		Buffers:      make(map[uint32]*Buffer),
		Textures:     make(map[uint32]*Texture),
		shaders:      make(map[uint32]*shaderObj),
		programs:     make(map[uint32]*programObj),
		units:        make(map[uint32]uint32),
		written:      make(map[string]bool),
	}
}

func (r *Recorder) id() uint32 {
	r.nextID++
	return r.nextID
}

func (r *Recorder) record(op string) { r.Calls = append(r.Calls, op) }

// BoundVertexArray returns the vertex array currently bound.
func (r *Recorder) BoundVertexArray() uint32 { return r.boundVAO }

// CurrentProgram returns the program in use.
func (r *Recorder) CurrentProgram() uint32 { return r.program }

// Uniform returns the current value of a named uniform of a program.
func (r *Recorder) Uniform(program uint32, name string) (any, bool) {
	p, ok := r.programs[program]
	if !ok {
		return nil, false
	}
	v, ok := p.values[name]
	return v, ok
}

// Sample returns the texel nearest to (u, v) with repeat wrapping.
func (r *Recorder) Sample(texture uint32, u, v float32) [4]uint8 {
	t, ok := r.Textures[texture]
	if !ok || t.Width == 0 || t.Height == 0 {
		return [4]uint8{}
	}
	fu := float64(u) - math.Floor(float64(u))
	fv := float64(v) - math.Floor(float64(v))
	x := min(int32(fu*float64(t.Width)), t.Width-1)
	y := min(int32(fv*float64(t.Height)), t.Height-1)
	i := (y*t.Width + x) * 4
	return [4]uint8{t.Pix[i], t.Pix[i+1], t.Pix[i+2], t.Pix[i+3]}
}

func (r *Recorder) SetClearColor(red, g, b, a float32) {
	r.record("ClearColor")
	r.ClearColor = [4]float32{red, g, b, a}
}

func (r *Recorder) EnableDepthTest() {
	r.record("EnableDepthTest")
	r.DepthTest = true
}

func (r *Recorder) Clear() {
	r.record("Clear")
	r.Clears++
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport")
	r.ViewportSize = [4]int32{x, y, width, height}
}

func (r *Recorder) CreateVertexArray() uint32 {
	r.record("CreateVertexArray")
	id := r.id()
	r.VertexArrays[id] = &VertexArray{Attribs: make(map[uint32]*Attrib)}
	return id
}

func (r *Recorder) BindVertexArray(vao uint32) {
	r.record("BindVertexArray")
	r.boundVAO = vao
	if va, ok := r.VertexArrays[vao]; ok {
		r.boundElem = va.ElementBuffer
	} else {
		r.boundElem = 0
	}
}

func (r *Recorder) CreateBuffer() uint32 {
	r.record("CreateBuffer")
	id := r.id()
	r.Buffers[id] = &Buffer{}
	return id
}

func (r *Recorder) BindBuffer(target gfx.BufferTarget, buffer uint32) {
	r.record("BindBuffer")
	if target == gfx.ElementArrayBuffer {
		r.boundElem = buffer
		if va, ok := r.VertexArrays[r.boundVAO]; ok {
			va.ElementBuffer = buffer
		}
		return
	}
	r.boundArray = buffer
}

func (r *Recorder) bound(target gfx.BufferTarget) *Buffer {
	if target == gfx.ElementArrayBuffer {
		return r.Buffers[r.boundElem]
	}
	return r.Buffers[r.boundArray]
}

func (r *Recorder) BufferFloats(target gfx.BufferTarget, data []float32) {
	r.record("BufferFloats")
	if b := r.bound(target); b != nil {
		b.Floats = append([]float32(nil), data...)
	}
}

func (r *Recorder) BufferIndices(target gfx.BufferTarget, data []uint16) {
	r.record("BufferIndices")
	if b := r.bound(target); b != nil {
		b.Indices = append([]uint16(nil), data...)
	}
}

func (r *Recorder) attrib(location uint32) *Attrib {
	va, ok := r.VertexArrays[r.boundVAO]
	if !ok {
		return &Attrib{}
	}
	a, ok := va.Attribs[location]
	if !ok {
		a = &Attrib{}
		va.Attribs[location] = a
	}
	return a
}

func (r *Recorder) VertexAttribPointer(location uint32, components int32) {
	r.record("VertexAttribPointer")
	a := r.attrib(location)
	a.Buffer = r.boundArray
	a.Components = components
}

func (r *Recorder) EnableVertexAttribArray(location uint32) {
	r.record("EnableVertexAttribArray")
	r.attrib(location).Enabled = true
}

func (r *Recorder) CreateShader(stage gfx.Stage) uint32 {
	r.record("CreateShader")
	id := r.id()
	r.shaders[id] = &shaderObj{stage: stage}
	return id
}

func (r *Recorder) CompileShader(shader uint32, source string) (bool, string) {
	r.record("CompileShader")
	s, ok := r.shaders[shader]
	if !ok {
		return false, "invalid shader object"
	}
	s.source = source
	if !strings.Contains(source, "void main") {
		return false, "ERROR: 0:1: 'main' : function not defined"
	}
	s.compiled = true
	return true, ""
}

func (r *Recorder) DeleteShader(shader uint32) {
	r.record("DeleteShader")
	delete(r.shaders, shader)
}

func (r *Recorder) CreateProgram() uint32 {
	r.record("CreateProgram")
	id := r.id()
	r.programs[id] = &programObj{
		attribs:  make(map[string]int32),
		uniforms: make(map[string]int32),
		names:    make(map[int32]string),
		values:   make(map[string]any),
	}
	return id
}

func (r *Recorder) LinkProgram(program uint32, shaders ...uint32) (bool, string) {
	r.record("LinkProgram")
	p, ok := r.programs[program]
	if !ok {
		return false, "invalid program object"
	}
	if r.FailLink {
		return false, "ERROR: link failed"
	}
	for _, id := range shaders {
		s, ok := r.shaders[id]
		if !ok || !s.compiled {
			return false, "ERROR: attached shader not compiled"
		}
		if s.stage == gfx.VertexStage {
			for _, m := range attribDecl.FindAllStringSubmatch(s.source, -1) {
				if _, dup := p.attribs[m[1]]; !dup {
					p.attribs[m[1]] = int32(len(p.attribs))
				}
			}
		}
		for _, m := range uniformDecl.FindAllStringSubmatch(s.source, -1) {
			if _, dup := p.uniforms[m[1]]; !dup {
				loc := int32(len(p.uniforms))
				p.uniforms[m[1]] = loc
				p.names[loc] = m[1]
			}
		}
	}
	p.linked = true
	return true, ""
}

func (r *Recorder) DeleteProgram(program uint32) {
	r.record("DeleteProgram")
	delete(r.programs, program)
}

func (r *Recorder) UseProgram(program uint32) {
	r.record("UseProgram")
	r.program = program
	r.written = make(map[string]bool)
}

func (r *Recorder) AttribLocation(program uint32, name string) int32 {
	p, ok := r.programs[program]
	if !ok || !p.linked {
		return -1
	}
	if loc, ok := p.attribs[name]; ok {
		return loc
	}
	return -1
}

func (r *Recorder) UniformLocation(program uint32, name string) int32 {
	p, ok := r.programs[program]
	if !ok || !p.linked {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (r *Recorder) setUniform(op string, location int32, v any) {
	r.record(op)
	p, ok := r.programs[r.program]
	if !ok || location < 0 {
		return
	}
	name, ok := p.names[location]
	if !ok {
		return
	}
	p.values[name] = v
	r.written[name] = true
}

func (r *Recorder) UniformMat4(location int32, m mgl32.Mat4) { r.setUniform("UniformMat4", location, m) }

func (r *Recorder) UniformVec3(location int32, v mgl32.Vec3) { r.setUniform("UniformVec3", location, v) }

func (r *Recorder) UniformFloat(location int32, v float32) { r.setUniform("UniformFloat", location, v) }

func (r *Recorder) UniformInt(location int32, v int32) { r.setUniform("UniformInt", location, v) }

func (r *Recorder) CreateTexture() uint32 {
	r.record("CreateTexture")
	id := r.id()
	r.Textures[id] = &Texture{}
	return id
}

func (r *Recorder) ActiveTexture(unit uint32) {
	r.record("ActiveTexture")
	r.activeUnit = unit
}

func (r *Recorder) BindTexture(texture uint32) {
	r.record("BindTexture")
	r.units[r.activeUnit] = texture
}

func (r *Recorder) boundTexture() *Texture {
	return r.Textures[r.units[r.activeUnit]]
}

func (r *Recorder) TexImageRGBA(width, height int32, pix []uint8) {
	r.record("TexImageRGBA")
	if t := r.boundTexture(); t != nil {
		t.Width, t.Height = width, height
		t.Pix = append([]uint8(nil), pix...)
	}
}

func (r *Recorder) GenerateMipmap() {
	r.record("GenerateMipmap")
	if t := r.boundTexture(); t != nil {
		t.Mipmapped = true
	}
}

func (r *Recorder) SetSampling(s gfx.Sampling) {
	r.record("SetSampling")
	if t := r.boundTexture(); t != nil {
		t.Sampling = s
	}
}

func (r *Recorder) DrawIndexedTriangles(count int32) {
	r.record("DrawIndexedTriangles")
	d := Draw{
		VertexArray: r.boundVAO,
		Count:       count,
		Program:     r.program,
		Texture:     r.units[0],
		Uniforms:    make(map[string]any),
		Written:     r.written,
	}
	if p, ok := r.programs[r.program]; ok {
		for k, v := range p.values {
			d.Uniforms[k] = v
		}
	}
	r.Draws = append(r.Draws, d)
	r.written = make(map[string]bool)
}

// ReadPixels returns the region filled with the clear color; draws are not rasterized.
func (r *Recorder) ReadPixels(x, y, width, height int32) []uint8 {
	r.record("ReadPixels")
	px := [4]uint8{}
	for i, c := range r.ClearColor {
		px[i] = uint8(math.Round(float64(min(max(c, 0), 1)) * 255))
	}
	pix := make([]uint8, 0, int(max(width, 0))*int(max(height, 0))*4)
	for i := int32(0); i < width*height; i++ {
		pix = append(pix, px[:]...)
	}
	return pix
}
