// Package geometry generates parametric solid meshes.
//
// Every generator is a pure function of its parameters: the same inputs
// always produce identical vertex, normal, UV and index arrays.
package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxVertices is the largest vertex count addressable by 16-bit indices.
const MaxVertices = 1 << 16

// ErrInvalidParameter is returned for tessellation or size parameters below their minimum.
var ErrInvalidParameter = errors.New("invalid geometry parameter")

// Kind identifies one of the generated solids.
type Kind int

const (
	KindBox Kind = iota
	KindSphere
	KindCylinder
	KindCone
)

// Kinds lists every generated solid.
var Kinds = []Kind{KindBox, KindSphere, KindCylinder, KindCone}

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindSphere:
		return "sphere"
	case KindCylinder:
		return "cylinder"
	case KindCone:
		return "cone"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Mesh is an indexed triangle list with optional per-vertex normals and UVs.
type Mesh struct {
	Points  []float32 // xyz per vertex
	Normals []float32 // xyz per vertex, or empty
	UV      []float32 // uv per vertex, or empty
	Indices []uint16  // triangle list
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Points) / 3
}

// Validate checks the index range and attribute array lengths.
func (m *Mesh) Validate() error {
	if len(m.Points)%3 != 0 {
		return fmt.Errorf("points length %d is not a multiple of 3", len(m.Points))
	}
	n := m.VertexCount()
	if n > MaxVertices {
		return fmt.Errorf("%d vertices exceed the 16-bit index range", n)
	}
	if len(m.Normals) != 0 && len(m.Normals) != n*3 {
		return fmt.Errorf("normals length %d, want %d", len(m.Normals), n*3)
	}
	if len(m.UV) != 0 && len(m.UV) != n*2 {
		return fmt.Errorf("uv length %d, want %d", len(m.UV), n*2)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("index %d at %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}

// Params holds the tessellation used when generating the unit solids.
type Params struct {
	Slices int
	Stacks int
}

// DefaultParams matches the 20x20 tessellation of the lamp scene.
func DefaultParams() Params {
	return Params{Slices: 20, Stacks: 20}
}

// Generate builds the unit-sized solid of the given kind: a unit cube, a
// sphere of radius 1, and a cylinder and cone of radius 0.5 and height 1,
// all centered on the origin.
func Generate(kind Kind, p Params) (*Mesh, error) {
	switch kind {
	case KindBox:
		return Box(1)
	case KindSphere:
		return Sphere(1, p.Slices, p.Stacks)
	case KindCylinder:
		return Cylinder(0.5, 1, p.Slices)
	case KindCone:
		return Cone(0.5, 1, p.Slices)
	default:
		return nil, fmt.Errorf("%w: unknown kind %v", ErrInvalidParameter, kind)
	}
}

// builder accumulates vertices and indices.
type builder struct {
	m Mesh
}

func newBuilder(vertices, indices int) *builder {
	return &builder{m: Mesh{
		Points:  make([]float32, 0, vertices*3),
		Normals: make([]float32, 0, vertices*3),
		UV:      make([]float32, 0, vertices*2),
		Indices: make([]uint16, 0, indices),
	}}
}

// vertex appends a vertex and returns its index.
func (b *builder) vertex(p, n mgl32.Vec3, u, v float32) uint16 {
	idx := uint16(len(b.m.Points) / 3)
	b.m.Points = append(b.m.Points, p[0], p[1], p[2])
	b.m.Normals = append(b.m.Normals, n[0], n[1], n[2])
	b.m.UV = append(b.m.UV, u, v)
	return idx
}

func (b *builder) triangle(a, c, d uint16) {
	b.m.Indices = append(b.m.Indices, a, c, d)
}

func (b *builder) mesh() *Mesh {
	m := b.m
	return &m
}

func checkSlices(slices int) error {
	if slices < 3 {
		return fmt.Errorf("%w: slices %d < 3", ErrInvalidParameter, slices)
	}
	return nil
}

func checkSize(name string, v float32) error {
	if !(v > 0) {
		return fmt.Errorf("%w: %s %v must be positive", ErrInvalidParameter, name, v)
	}
	return nil
}

func checkVertexCount(n int) error {
	if n > MaxVertices {
		return fmt.Errorf("%w: %d vertices exceed the 16-bit index range", ErrInvalidParameter, n)
	}
	return nil
}
