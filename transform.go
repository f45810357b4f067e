package demo

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera and projection constants shared by the 3D programs.
const (
	cameraFOVDegrees = 45.0
	cameraNear       = 0.1
	cameraFar        = 100.0
)

var (
	cameraEye    = mgl32.Vec3{0, 1.5, 3}
	cameraCenter = mgl32.Vec3{0, 0, 0}
	cameraUp     = mgl32.Vec3{0, 1, 0}
)

// Transform derives the model, view and projection matrices from a single
// accumulated elapsed time. No matrix state persists between frames; each
// accessor recomputes from the current time and constants, so the same
// elapsed time always yields the same matrices.
type Transform struct {
	elapsed float32 // seconds since load

	rotateSpeedX float32 // radians per second around X
	rotateSpeedY float32 // radians per second around Y
	scale        float32

	aspect float32 // width / height of the current viewport
}

// NewTransform creates a Transform with the given rotation speeds and
// uniform scale, starting at t=0.
func NewTransform(rotateSpeedX, rotateSpeedY, scale float32) Transform {
	if scale == 0 {
		scale = 1
	}
	return Transform{
		rotateSpeedX: rotateSpeedX,
		rotateSpeedY: rotateSpeedY,
		scale:        scale,
		aspect:       1,
	}
}

// Advance accumulates elapsed frame time.
func (t *Transform) Advance(dt float32) {
	t.elapsed += dt
}

// Elapsed returns the accumulated time in seconds.
func (t *Transform) Elapsed() float32 {
	return t.elapsed
}

// SetAspect updates the projection aspect ratio from a viewport size.
// Model and view are unaffected.
func (t *Transform) SetAspect(width, height int) {
	if height <= 0 {
		return
	}
	t.aspect = float32(width) / float32(height)
}

// Model returns scale · rotateX(t·kx) · rotateY(t·ky).
func (t *Transform) Model() mgl32.Mat4 {
	s := mgl32.Scale3D(t.scale, t.scale, t.scale)
	rx := mgl32.HomogRotate3DX(t.elapsed * t.rotateSpeedX)
	ry := mgl32.HomogRotate3DY(t.elapsed * t.rotateSpeedY)
	return s.Mul4(rx).Mul4(ry)
}

// View returns the fixed look-at camera matrix.
func (t *Transform) View() mgl32.Mat4 {
	return mgl32.LookAtV(cameraEye, cameraCenter, cameraUp)
}

// Projection returns the perspective matrix for the current aspect ratio.
func (t *Transform) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(cameraFOVDegrees), t.aspect, cameraNear, cameraFar)
}

// MVP returns projection · view · model, the full clip-space transform.
func (t *Transform) MVP() mgl32.Mat4 {
	return t.Projection().Mul4(t.View()).Mul4(t.Model())
}
