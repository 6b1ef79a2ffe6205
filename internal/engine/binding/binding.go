// Package binding uploads meshes into GPU buffers under a vertex array object.
package binding

import (
	"github.com/Faultbox/luxo/internal/engine/geometry"
	"github.com/Faultbox/luxo/internal/engine/gfx"
	"github.com/Faultbox/luxo/internal/engine/shader"
)

// Binding is a vertex array with its attribute buffers and index buffer.
// It is created once per mesh and never modified afterwards.
type Binding struct {
	ctx        gfx.Context
	vao        uint32
	indexCount int32
	attributes []string
}

type attribute struct {
	name       string
	components int32
	data       []float32
}

// Bind uploads the mesh attributes the program declares, plus the index buffer.
// Attributes the program does not use, or the mesh does not provide, are skipped.
// No vertex array is left bound on return.
func Bind(ctx gfx.Context, mesh *geometry.Mesh, prog *shader.Program) *Binding {
	b := &Binding{
		ctx:        ctx,
		vao:        ctx.CreateVertexArray(),
		indexCount: int32(len(mesh.Indices)),
	}
	ctx.BindVertexArray(b.vao)
	defer ctx.BindVertexArray(0)

	n := mesh.VertexCount()
	attrs := []attribute{
		{shader.AttrPosition, 3, mesh.Points},
		{shader.AttrNormal, 3, mesh.Normals},
		{shader.AttrUV, 2, mesh.UV},
	}
	for _, a := range attrs {
		loc := prog.AttribLocation(a.name)
		if loc == shader.NotPresent || len(a.data) == 0 || len(a.data) != n*int(a.components) {
			continue
		}
		buf := ctx.CreateBuffer()
		ctx.BindBuffer(gfx.ArrayBuffer, buf)
		ctx.BufferFloats(gfx.ArrayBuffer, a.data)
		ctx.VertexAttribPointer(uint32(loc), a.components)
		ctx.EnableVertexAttribArray(uint32(loc))
		b.attributes = append(b.attributes, a.name)
	}

	ibo := ctx.CreateBuffer()
	ctx.BindBuffer(gfx.ElementArrayBuffer, ibo)
	ctx.BufferIndices(gfx.ElementArrayBuffer, mesh.Indices)

	return b
}

// Activate binds the vertex array for subsequent draws.
func (b *Binding) Activate() { b.ctx.BindVertexArray(b.vao) }

// Deactivate leaves no vertex array bound.
func (b *Binding) Deactivate() { b.ctx.BindVertexArray(0) }

// Draw issues an indexed triangle draw covering the whole mesh.
// The binding must be active.
func (b *Binding) Draw() { b.ctx.DrawIndexedTriangles(b.indexCount) }

// IndexCount returns the number of indices uploaded.
func (b *Binding) IndexCount() int32 { return b.indexCount }

// Attributes lists the uploaded attribute names in upload order.
func (b *Binding) Attributes() []string { return b.attributes }

// VertexArray returns the driver handle of the vertex array.
func (b *Binding) VertexArray() uint32 { return b.vao }
