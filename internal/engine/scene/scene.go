// Package scene composes the lamp, ball and floor into an ordered list of
// draw items with world transforms.
//
// The lamp is a small tree of joints. World transforms are produced by a
// depth-first walk from the root; every matrix is a value, so no two joints
// ever share a transform.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/luxo/internal/engine/geometry"
)

// Material holds the Phong coefficients and base color of a drawn part.
type Material struct {
	Color     mgl32.Vec3
	Ambient   float32
	Diffuse   float32
	Specular  float32
	Shininess float32

	// Texture is a key resolved by the renderer. Empty means untextured.
	Texture string
}

// DefaultMaterial returns the shiny plastic material used for most parts.
func DefaultMaterial(color mgl32.Vec3) Material {
	return Material{
		Color:     color,
		Ambient:   0.3,
		Diffuse:   0.7,
		Specular:  0.8,
		Shininess: 32,
	}
}

// Anchor selects the joint frame a part is attached to.
type Anchor int

const (
	// AnchorPivot is the joint origin after its rotation and scale.
	AnchorPivot Anchor = iota
	// AnchorCenter is halfway along the joint's local Y.
	AnchorCenter
	// AnchorTip is the end of the joint, where children attach.
	AnchorTip
)

// Axis is a rotation axis in joint-local space.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Rotation is a rotation about a local axis.
type Rotation struct {
	Axis    Axis
	Degrees float32
}

// Matrix returns the rotation as a homogeneous matrix.
func (r Rotation) Matrix() mgl32.Mat4 {
	rad := mgl32.DegToRad(r.Degrees)
	switch r.Axis {
	case AxisX:
		return mgl32.HomogRotate3DX(rad)
	case AxisY:
		return mgl32.HomogRotate3DY(rad)
	default:
		return mgl32.HomogRotate3DZ(rad)
	}
}

// Part is a drawable solid attached to a joint (or placed directly in the
// world, for props).
type Part struct {
	Name     string
	Shape    geometry.Kind
	Anchor   Anchor
	Offset   mgl32.Vec3
	Scale    mgl32.Vec3
	Material Material
}

// Model returns the part's model matrix relative to the given anchor frame.
// A zero Scale is treated as unit scale.
func (p Part) Model(anchor mgl32.Mat4) mgl32.Mat4 {
	s := unitIfZero(p.Scale)
	return anchor.
		Mul4(mgl32.Translate3D(p.Offset.X(), p.Offset.Y(), p.Offset.Z())).
		Mul4(mgl32.Scale3D(s.X(), s.Y(), s.Z()))
}

func unitIfZero(v mgl32.Vec3) mgl32.Vec3 {
	if v == (mgl32.Vec3{}) {
		return mgl32.Vec3{1, 1, 1}
	}
	return v
}

// Joint is a node of the articulated chain.
//
// Its pivot is parent × T(Offset) × R(Rotations...) × S(Scale). Parts and
// children hang off the pivot, center or tip, which lie 0, Length/2 and
// Length along the pivot's local Y.
type Joint struct {
	Name      string
	Offset    mgl32.Vec3
	Rotations []Rotation
	Scale     mgl32.Vec3
	Length    float32
	Parts     []Part
	Children  []*Joint
}

// JointPose is the world-space frames of a joint after composition.
type JointPose struct {
	Pivot  mgl32.Mat4
	Center mgl32.Mat4
	Tip    mgl32.Mat4
}

// Frame returns the matrix for the given anchor.
func (p JointPose) Frame(a Anchor) mgl32.Mat4 {
	switch a {
	case AnchorCenter:
		return p.Center
	case AnchorTip:
		return p.Tip
	default:
		return p.Pivot
	}
}

// Pose derives the joint frames from the parent's tip frame.
func (j *Joint) Pose(parent mgl32.Mat4) JointPose {
	pivot := parent.Mul4(mgl32.Translate3D(j.Offset.X(), j.Offset.Y(), j.Offset.Z()))
	for _, r := range j.Rotations {
		pivot = pivot.Mul4(r.Matrix())
	}
	scale := unitIfZero(j.Scale)
	pivot = pivot.Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))

	return JointPose{
		Pivot:  pivot,
		Center: pivot.Mul4(mgl32.Translate3D(0, j.Length/2, 0)),
		Tip:    pivot.Mul4(mgl32.Translate3D(0, j.Length, 0)),
	}
}

// DrawItem is one draw call: a shape, its model matrix and its material.
type DrawItem struct {
	Name     string
	Shape    geometry.Kind
	Model    mgl32.Mat4
	Material Material
}

// Frame is the composed scene for one render.
type Frame struct {
	Items  []DrawItem
	Joints map[string]JointPose
}

// Composer builds frames from the lamp tree and the free-standing props.
type Composer struct {
	Lamp  *Joint
	Props []Part
}

// NewComposer returns a composer for the lamp in the given pose plus the
// default props.
func NewComposer(pose Pose) Composer {
	return Composer{
		Lamp:  NewLamp(pose),
		Props: Props(),
	}
}

// Compose walks the props and then the lamp tree depth-first, producing draw
// items in a fixed order. It does not modify the composer, so repeated calls
// return equal frames.
func (c Composer) Compose() Frame {
	f := Frame{Joints: make(map[string]JointPose)}

	for _, p := range c.Props {
		f.Items = append(f.Items, DrawItem{
			Name:     p.Name,
			Shape:    p.Shape,
			Model:    p.Model(mgl32.Ident4()),
			Material: p.Material,
		})
	}
	if c.Lamp != nil {
		c.walk(&f, c.Lamp, mgl32.Ident4())
	}
	return f
}

func (c Composer) walk(f *Frame, j *Joint, parent mgl32.Mat4) {
	pose := j.Pose(parent)
	f.Joints[j.Name] = pose

	for _, p := range j.Parts {
		f.Items = append(f.Items, DrawItem{
			Name:     p.Name,
			Shape:    p.Shape,
			Model:    p.Model(pose.Frame(p.Anchor)),
			Material: p.Material,
		})
	}
	for _, child := range j.Children {
		c.walk(f, child, pose.Tip)
	}
}
