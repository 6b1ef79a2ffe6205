package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere returns a latitude/longitude sphere of (stacks+1)*(slices+1) vertices.
// φ runs from the north pole (0) to the south pole (π) over stacks, θ runs
// around the Y axis over slices; the seam column is duplicated so UVs wrap cleanly.
func Sphere(radius float32, slices, stacks int) (*Mesh, error) {
	if err := checkSize("radius", radius); err != nil {
		return nil, err
	}
	if err := checkSlices(slices); err != nil {
		return nil, err
	}
	if stacks < 1 {
		return nil, fmt.Errorf("%w: stacks %d < 1", ErrInvalidParameter, stacks)
	}
	cols := slices + 1
	if err := checkVertexCount((stacks + 1) * cols); err != nil {
		return nil, err
	}

	b := newBuilder((stacks+1)*cols, stacks*slices*6)

	for i := 0; i <= stacks; i++ {
		phi := math32.Pi * float32(i) / float32(stacks)
		sinPhi, cosPhi := math32.Sin(phi), math32.Cos(phi)
		for j := 0; j <= slices; j++ {
			theta := 2 * math32.Pi * float32(j) / float32(slices)
			n := mgl32.Vec3{sinPhi * math32.Cos(theta), cosPhi, sinPhi * math32.Sin(theta)}.Normalize()
			b.vertex(n.Mul(radius), n, float32(j)/float32(slices), float32(i)/float32(stacks))
		}
	}

	// The first triangle of a cell collapses at the north pole and the
	// second at the south pole, so those are left out.
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			cur := uint16(i*cols + j)
			next := cur + uint16(cols)
			if i != 0 {
				b.triangle(cur, cur+1, next)
			}
			if i != stacks-1 {
				b.triangle(cur+1, next+1, next)
			}
		}
	}

	return b.mesh(), nil
}
