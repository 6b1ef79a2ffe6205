package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "want %v, got %v", want, got)
	}
}

func TestEyePosition(t *testing.T) {
	tests := []struct {
		azimuth float32
		want    mgl32.Vec3
	}{
		{0, mgl32.Vec3{0, 5, 15}},
		{90, mgl32.Vec3{15, 5, 0}},
		{180, mgl32.Vec3{0, 5, -15}},
		{270, mgl32.Vec3{-15, 5, 0}},
	}

	for _, tt := range tests {
		v, err := Compute(State{AzimuthDegrees: tt.azimuth, Height: 5, Radius: 15}, 800, 600)
		require.NoError(t, err)
		assertVec(t, tt.want, v.Eye)
	}
}

func TestViewLooksAtTarget(t *testing.T) {
	v, err := Compute(DefaultState(), 1280, 720)
	require.NoError(t, err)

	// The eye maps to the origin of view space.
	eye := mgl32.TransformCoordinate(v.Eye, v.View)
	assertVec(t, mgl32.Vec3{}, eye)

	// The target lies straight down -Z.
	target := mgl32.TransformCoordinate(Target, v.View)
	assert.InDelta(t, 0, target.X(), 1e-4)
	assert.InDelta(t, 0, target.Y(), 1e-4)
	assert.Less(t, target.Z(), float32(0))
	assert.InDelta(t, v.Eye.Sub(Target).Len(), -target.Z(), 1e-4)
}

func TestProjectionFollowsAspect(t *testing.T) {
	wide, err := Compute(DefaultState(), 1600, 800)
	require.NoError(t, err)
	square, err := Compute(DefaultState(), 800, 800)
	require.NoError(t, err)

	want := mgl32.Perspective(mgl32.DegToRad(45), 2, 0.1, 100)
	for i := range want {
		assert.InDelta(t, want[i], wide.Projection[i], 1e-6)
	}
	assert.InDelta(t, square.Projection[0]/2, wide.Projection[0], 1e-6)
	assert.Equal(t, square.Projection[5], wide.Projection[5])
}

func TestDepthRange(t *testing.T) {
	v, err := Compute(DefaultState(), 800, 800)
	require.NoError(t, err)

	ndcZ := func(z float32) float32 {
		c := v.Projection.Mul4x1(mgl32.Vec4{0, 0, z, 1})
		return c.Z() / c.W()
	}
	assert.InDelta(t, -1, ndcZ(-Near), 1e-4)
	assert.InDelta(t, 1, ndcZ(-Far), 1e-3)
}

func TestDegenerate(t *testing.T) {
	_, err := Compute(State{AzimuthDegrees: 0, Height: 5, Radius: 0}, 800, 600)
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Compute(State{AzimuthDegrees: 0, Height: 5, Radius: -3}, 800, 600)
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Compute(DefaultState(), 0, 600)
	assert.ErrorIs(t, err, ErrEmptyViewport)
}

func TestOrbitWraps(t *testing.T) {
	s := State{AzimuthDegrees: 350, Height: 5, Radius: 15}
	s.Orbit(20)
	assert.InDelta(t, 10, s.AzimuthDegrees, 1e-4)

	s.Orbit(-30)
	assert.InDelta(t, 340, s.AzimuthDegrees, 1e-4)

	s.Raise(-1.5)
	assert.Equal(t, float32(3.5), s.Height)
}

func TestControls(t *testing.T) {
	c := Controls{AzimuthStep: 10, HeightStep: 2}
	s := State{AzimuthDegrees: 5, Height: 5, Radius: 15}

	assert.True(t, c.Apply(&s, ActionOrbitLeft))
	assert.InDelta(t, 355, s.AzimuthDegrees, 1e-4)
	assert.True(t, c.Apply(&s, ActionOrbitRight))
	assert.True(t, c.Apply(&s, ActionOrbitRight))
	assert.InDelta(t, 15, s.AzimuthDegrees, 1e-4)

	assert.True(t, c.Apply(&s, ActionRaise))
	assert.Equal(t, float32(7), s.Height)
	assert.True(t, c.Apply(&s, ActionLower))
	assert.True(t, c.Apply(&s, ActionLower))
	assert.Equal(t, float32(3), s.Height)

	before := s
	assert.False(t, c.Apply(&s, ActionNone))
	assert.Equal(t, before, s)
	assert.Equal(t, float32(15), s.Radius)
}
