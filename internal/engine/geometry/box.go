package geometry

import "github.com/go-gl/mathgl/mgl32"

// boxFace is one side of a box: its outward normal and two in-plane axes
// with u × v = normal, so corners walked -u-v, +u-v, +u+v, -u+v are
// counter-clockwise seen from outside.
type boxFace struct {
	normal, u, v mgl32.Vec3
}

var boxFaces = [6]boxFace{
	{normal: mgl32.Vec3{1, 0, 0}, u: mgl32.Vec3{0, 0, -1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{-1, 0, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, -1}},
	{normal: mgl32.Vec3{0, -1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{0, 0, 1}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 0, -1}, u: mgl32.Vec3{-1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
}

// Box returns an axis-aligned cube with the given edge length centered on the origin.
// Each face is its own quad so it can carry a flat normal and a full 0-1 UV square.
func Box(size float32) (*Mesh, error) {
	if err := checkSize("size", size); err != nil {
		return nil, err
	}

	h := size / 2
	b := newBuilder(24, 36)
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	for _, f := range boxFaces {
		center := f.normal.Mul(h)
		var idx [4]uint16
		for i, c := range corners {
			p := center.Add(f.u.Mul(c[0] * h)).Add(f.v.Mul(c[1] * h))
			idx[i] = b.vertex(p, f.normal, (c[0]+1)/2, (c[1]+1)/2)
		}
		b.triangle(idx[0], idx[1], idx[2])
		b.triangle(idx[0], idx[2], idx[3])
	}

	return b.mesh(), nil
}
