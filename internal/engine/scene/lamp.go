package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/luxo/internal/engine/geometry"
)

// Joint and part names.
const (
	JointBase     = "base"
	JointLowerArm = "lowerArm"
	JointUpperArm = "upperArm"
	JointHead     = "head"

	PartBall     = "ball"
	PartFloor    = "floor"
	PartBase     = "base"
	PartLowerArm = "lowerArm"
	PartElbow    = "elbow"
	PartUpperArm = "upperArm"
	PartHead     = "head"
	PartBulb     = "bulb"
)

// TextureBall is the texture key of the ball.
const TextureBall = "ball"

// Lamp dimensions.
const (
	ArmLength = 3.0
	ArmWidth  = 0.2
	HeadScale = 1.5
)

var (
	lampColor  = mgl32.Vec3{0.7, 0.7, 0.7}
	elbowColor = mgl32.Vec3{0.3, 0.3, 0.3}
	bulbColor  = mgl32.Vec3{1, 1, 0.9}
	floorColor = mgl32.Vec3{0.4, 0.4, 0.4}
	ballColor  = mgl32.Vec3{1, 1, 1}

	// basePosition is where the arm chain starts, on top of the base plate.
	basePosition = mgl32.Vec3{-2, 0.2, -1}
)

// Pose is the set of joint angles in degrees.
type Pose struct {
	LowerArm float32 // about Z, from vertical
	UpperArm float32 // about Z, relative to the lower arm
	HeadTilt float32 // about Z, relative to the upper arm
	HeadTurn float32 // about the head's Y after the tilt
}

// DefaultPose returns the lamp's resting pose.
func DefaultPose() Pose {
	return Pose{
		LowerArm: -30,
		UpperArm: 70,
		HeadTilt: 80,
		HeadTurn: -20,
	}
}

func uniform(s float32) mgl32.Vec3 { return mgl32.Vec3{s, s, s} }

// NewLamp builds the lamp joint tree: base, lower arm with the elbow ball at
// its tip, upper arm, and the head cone with its bulb.
func NewLamp(pose Pose) *Joint {
	head := &Joint{
		Name: JointHead,
		Rotations: []Rotation{
			{AxisZ, pose.HeadTilt},
			{AxisY, pose.HeadTurn},
		},
		Scale: uniform(HeadScale),
		Parts: []Part{
			{
				Name:     PartHead,
				Shape:    geometry.KindCone,
				Anchor:   AnchorPivot,
				Scale:    uniform(1),
				Material: DefaultMaterial(lampColor),
			},
			{
				Name:     PartBulb,
				Shape:    geometry.KindSphere,
				Anchor:   AnchorPivot,
				Offset:   mgl32.Vec3{0, 0.5, 0},
				Scale:    uniform(0.4),
				Material: bulbMaterial(),
			},
		},
	}

	upper := &Joint{
		Name:      JointUpperArm,
		Rotations: []Rotation{{AxisZ, pose.UpperArm}},
		Length:    ArmLength,
		Parts:     []Part{armPart(PartUpperArm)},
		Children:  []*Joint{head},
	}

	lower := &Joint{
		Name:      JointLowerArm,
		Rotations: []Rotation{{AxisZ, pose.LowerArm}},
		Length:    ArmLength,
		Parts: []Part{
			armPart(PartLowerArm),
			{
				Name:     PartElbow,
				Shape:    geometry.KindSphere,
				Anchor:   AnchorTip,
				Scale:    uniform(0.4),
				Material: DefaultMaterial(elbowColor),
			},
		},
		Children: []*Joint{upper},
	}

	return &Joint{
		Name:   JointBase,
		Offset: basePosition,
		Parts: []Part{{
			Name:     PartBase,
			Shape:    geometry.KindCylinder,
			Anchor:   AnchorPivot,
			Offset:   mgl32.Vec3{0, -0.1, 0},
			Scale:    mgl32.Vec3{1.5, 0.2, 1.5},
			Material: DefaultMaterial(lampColor),
		}},
		Children: []*Joint{lower},
	}
}

func armPart(name string) Part {
	return Part{
		Name:     name,
		Shape:    geometry.KindBox,
		Anchor:   AnchorCenter,
		Scale:    mgl32.Vec3{ArmWidth, ArmLength, ArmWidth},
		Material: DefaultMaterial(lampColor),
	}
}

func bulbMaterial() Material {
	m := DefaultMaterial(bulbColor)
	m.Specular = 1.0
	return m
}

// Props returns the free-standing objects: the textured ball and the floor.
func Props() []Part {
	ball := DefaultMaterial(ballColor)
	ball.Texture = TextureBall

	floor := DefaultMaterial(floorColor)
	floor.Specular = 0.1

	return []Part{
		{
			Name:     PartBall,
			Shape:    geometry.KindSphere,
			Offset:   mgl32.Vec3{2, 1, 2},
			Scale:    uniform(1),
			Material: ball,
		},
		{
			Name:     PartFloor,
			Shape:    geometry.KindBox,
			Offset:   mgl32.Vec3{0, -0.5, 0},
			Scale:    mgl32.Vec3{20, 1, 20},
			Material: floor,
		},
	}
}
