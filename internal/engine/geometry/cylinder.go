package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Cylinder returns a capped cylinder along Y, centered on the origin.
// The side wall carries radial normals; each cap is a fan around a center
// vertex with a constant up or down normal.
func Cylinder(radius, height float32, slices int) (*Mesh, error) {
	if err := checkSize("radius", radius); err != nil {
		return nil, err
	}
	if err := checkSize("height", height); err != nil {
		return nil, err
	}
	if err := checkSlices(slices); err != nil {
		return nil, err
	}

	ring := slices + 1
	if err := checkVertexCount(4*ring + 2); err != nil {
		return nil, err
	}
	b := newBuilder(4*ring+2, slices*12)
	h := height / 2

	for i := 0; i <= slices; i++ {
		c, s := angle(i, slices)
		n := mgl32.Vec3{c, 0, s}
		u := float32(i) / float32(slices)
		b.vertex(mgl32.Vec3{radius * c, -h, radius * s}, n, u, 0)
		b.vertex(mgl32.Vec3{radius * c, h, radius * s}, n, u, 1)
	}
	for i := 0; i < slices; i++ {
		bot0, top0 := uint16(2*i), uint16(2*i+1)
		bot1, top1 := bot0+2, top0+2
		b.triangle(bot0, top0, bot1)
		b.triangle(bot1, top0, top1)
	}

	disk(b, radius, h, slices, true)
	disk(b, radius, -h, slices, false)

	return b.mesh(), nil
}

// Cone returns a capped cone along Y with its apex at +height/2.
// Every slice gets its own apex vertex so the lateral normals stay slanted
// all the way to the tip.
func Cone(radius, height float32, slices int) (*Mesh, error) {
	if err := checkSize("radius", radius); err != nil {
		return nil, err
	}
	if err := checkSize("height", height); err != nil {
		return nil, err
	}
	if err := checkSlices(slices); err != nil {
		return nil, err
	}

	ring := slices + 1
	if err := checkVertexCount(2*ring + slices + 1); err != nil {
		return nil, err
	}
	b := newBuilder(2*ring+slices+1, slices*6)
	h := height / 2

	// Outward normal of the lateral surface: perpendicular to the slant line
	// from the base rim to the apex.
	slant := func(c, s float32) mgl32.Vec3 {
		return mgl32.Vec3{height * c, radius, height * s}.Normalize()
	}

	base := make([]uint16, ring)
	for i := 0; i <= slices; i++ {
		c, s := angle(i, slices)
		base[i] = b.vertex(mgl32.Vec3{radius * c, -h, radius * s}, slant(c, s), float32(i)/float32(slices), 0)
	}
	for i := 0; i < slices; i++ {
		mid := 2 * math32.Pi * (float32(i) + 0.5) / float32(slices)
		c, s := math32.Cos(mid), math32.Sin(mid)
		apex := b.vertex(mgl32.Vec3{0, h, 0}, slant(c, s), (float32(i)+0.5)/float32(slices), 1)
		b.triangle(base[i], apex, base[i+1])
	}

	disk(b, radius, -h, slices, false)

	return b.mesh(), nil
}

// disk adds a disk at height y as a triangle fan around its center.
func disk(b *builder, radius, y float32, slices int, up bool) {
	n := mgl32.Vec3{0, -1, 0}
	if up {
		n = mgl32.Vec3{0, 1, 0}
	}

	center := b.vertex(mgl32.Vec3{0, y, 0}, n, 0.5, 0.5)
	first := center + 1
	for i := 0; i <= slices; i++ {
		c, s := angle(i, slices)
		b.vertex(mgl32.Vec3{radius * c, y, radius * s}, n, 0.5+0.5*c, 0.5+0.5*s)
	}
	for i := 0; i < slices; i++ {
		a, next := first+uint16(i), first+uint16(i+1)
		if up {
			b.triangle(center, next, a)
		} else {
			b.triangle(center, a, next)
		}
	}
}

// angle returns cos and sin of the i-th of n steps around the circle.
func angle(i, n int) (float32, float32) {
	theta := 2 * math32.Pi * float32(i) / float32(n)
	return math32.Cos(theta), math32.Sin(theta)
}
