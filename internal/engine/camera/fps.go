package camera

import (
	"github.com/Faultbox/neo3d/pkg/math"
)

// pitchLimit keeps the view direction away from the vertical where the yaw
// frame degenerates.
const pitchLimit = math.HalfPi - 0.001

// FPSCamera is a first-person camera turned by yaw around +Y, then by pitch
// around its own X axis.
type FPSCamera struct {
	Eye   math.Vec3
	Pitch float32 // radians, clamped to ±pitchLimit
	Yaw   float32 // radians, wrapped to [0, 2π)

	MoveSpeed       float32
	TurnSensitivity float32
}

// NewFPSCamera creates a first-person camera at eye looking down -Z.
func NewFPSCamera(eye math.Vec3) *FPSCamera {
	return &FPSCamera{
		Eye:             eye,
		MoveSpeed:       1.0,
		TurnSensitivity: 0.005,
	}
}

// ViewMatrix writes the view matrix for this camera to out.
func (c *FPSCamera) ViewMatrix(out *math.Mat4) *math.Mat4 {
	return out.BuildFPSView(&c.Eye, c.Pitch, c.Yaw)
}

// Forward returns the unit view direction.
func (c *FPSCamera) Forward() math.Vec3 {
	cp := math.Cos(c.Pitch)
	return math.Vec3{-math.Sin(c.Yaw) * cp, math.Sin(c.Pitch), -math.Cos(c.Yaw) * cp}
}

// Right returns the unit right direction, always horizontal.
func (c *FPSCamera) Right() math.Vec3 {
	return math.Vec3{math.Cos(c.Yaw), 0, -math.Sin(c.Yaw)}
}

// Turn adds to the yaw and pitch angles, in radians.
func (c *FPSCamera) Turn(dYaw, dPitch float32) {
	c.SetAngles(c.Pitch+dPitch, c.Yaw+dYaw)
}

// HandleDrag turns the camera from a mouse drag delta.
func (c *FPSCamera) HandleDrag(deltaX, deltaY float32) {
	c.Turn(-deltaX*c.TurnSensitivity, -deltaY*c.TurnSensitivity)
}

// SetAngles sets pitch and yaw, clamping and wrapping them.
func (c *FPSCamera) SetAngles(pitch, yaw float32) {
	c.Pitch = clamp(pitch, -pitchLimit, pitchLimit)
	c.Yaw = wrapAngle(yaw)
}

// Move translates the eye in the horizontal yaw frame: forward along the view
// direction projected on XZ, right along Right() and up along +Y.
func (c *FPSCamera) Move(forward, right, up float32) {
	sy, cy := math.Sin(c.Yaw), math.Cos(c.Yaw)
	s := c.MoveSpeed
	c.Eye[0] += (-sy*forward + cy*right) * s
	c.Eye[1] += up * s
	c.Eye[2] += (-cy*forward - sy*right) * s
}

func wrapAngle(a float32) float32 {
	a -= math.TwoPi * math.Floor(a/math.TwoPi)
	if a >= math.TwoPi {
		a = 0
	}
	return a
}
