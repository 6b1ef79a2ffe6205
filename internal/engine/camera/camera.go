// Package camera provides the orbiting camera that views the lamp scene.
package camera

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Projection parameters.
const (
	FieldOfView = 45.0 // degrees
	Near        = 0.1
	Far         = 100.0
)

// Target is the fixed point the camera looks at.
var Target = mgl32.Vec3{0, 2, 0}

// Up is the world up direction.
var Up = mgl32.Vec3{0, 1, 0}

var (
	// ErrDegenerate is returned when the eye position cannot define a view direction.
	ErrDegenerate = errors.New("degenerate camera")
	// ErrEmptyViewport is returned for a zero-sized viewport (e.g. a minimized window).
	ErrEmptyViewport = errors.New("empty viewport")
)

// State is the orbit position of the camera. Input handling mutates it
// between frames; the renderer only reads it.
type State struct {
	AzimuthDegrees float32 // rotation around Y, 0 looks down -Z from +Z
	Height         float32 // eye height above the ground plane
	Radius         float32 // horizontal distance from the Y axis
}

// DefaultState returns the starting camera position.
func DefaultState() State {
	return State{
		AzimuthDegrees: 45,
		Height:         5,
		Radius:         15,
	}
}

// Orbit rotates the camera around the Y axis, keeping the azimuth in [0, 360).
func (s *State) Orbit(deltaDegrees float32) {
	a := math32.Mod(s.AzimuthDegrees+deltaDegrees, 360)
	if a < 0 {
		a += 360
	}
	s.AzimuthDegrees = a
}

// Raise moves the eye up or down.
func (s *State) Raise(delta float32) {
	s.Height += delta
}

// Eye returns the camera position in world space.
func (s State) Eye() mgl32.Vec3 {
	az := mgl32.DegToRad(s.AzimuthDegrees)
	return mgl32.Vec3{
		s.Radius * math32.Sin(az),
		s.Height,
		s.Radius * math32.Cos(az),
	}
}

// View holds the matrices and eye position for one frame.
type View struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Eye        mgl32.Vec3
}

// Compute returns the projection and view for the state and viewport size.
// The aspect ratio is taken from the viewport on every call.
func Compute(s State, width, height int) (View, error) {
	if width <= 0 || height <= 0 {
		return View{}, fmt.Errorf("%w: %dx%d", ErrEmptyViewport, width, height)
	}
	if !(s.Radius > 0) {
		return View{}, fmt.Errorf("%w: radius %v", ErrDegenerate, s.Radius)
	}

	eye := s.Eye()
	dir := Target.Sub(eye)
	if dir.Len() < 1e-6 || dir.Normalize().Cross(Up).Len() < 1e-6 {
		return View{}, fmt.Errorf("%w: eye %v", ErrDegenerate, eye)
	}

	aspect := float32(width) / float32(height)
	return View{
		Projection: mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, Near, Far),
		View:       mgl32.LookAtV(eye, Target, Up),
		Eye:        eye,
	}, nil
}

// Action is a camera movement requested by input.
type Action int

const (
	ActionNone Action = iota
	ActionOrbitLeft
	ActionOrbitRight
	ActionRaise
	ActionLower
)

// Controls turns actions into state changes.
type Controls struct {
	AzimuthStep float32 // degrees per action
	HeightStep  float32
}

// DefaultControls returns the keyboard step sizes.
func DefaultControls() Controls {
	return Controls{AzimuthStep: 5, HeightStep: 0.5}
}

// Apply moves the camera for one action. It reports whether the state changed.
func (c Controls) Apply(s *State, a Action) bool {
	switch a {
	case ActionOrbitLeft:
		s.Orbit(-c.AzimuthStep)
	case ActionOrbitRight:
		s.Orbit(c.AzimuthStep)
	case ActionRaise:
		s.Raise(c.HeightStep)
	case ActionLower:
		s.Raise(-c.HeightStep)
	default:
		return false
	}
	return true
}
