// Package camera provides the camera rig that produces view and projection
// matrices for rendering.
package camera

import (
	"go.uber.org/zap"

	"github.com/Faultbox/neo3d/internal/logger"
	"github.com/Faultbox/neo3d/pkg/math"
)

// Viewer is anything that can write a view matrix.
type Viewer interface {
	ViewMatrix(out *math.Mat4) *math.Mat4
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3
	Up     math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Vertical angle, radians
	Yaw      float32 // Horizontal angle, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Up:              math.Vec3J,
		Distance:        10.0,
		Pitch:           0.5,
		Yaw:             0.0,
		MinDistance:     0.5,
		MaxDistance:     5000.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cp := math.Cos(c.Pitch)
	offset := math.Vec3{
		c.Distance * cp * math.Sin(c.Yaw),
		c.Distance * math.Sin(c.Pitch),
		c.Distance * cp * math.Cos(c.Yaw),
	}
	var pos math.Vec3
	return *pos.Add(&c.Center, &offset)
}

// ViewMatrix writes the view matrix for this camera to out.
func (c *OrbitCamera) ViewMatrix(out *math.Mat4) *math.Mat4 {
	eye := c.Position()
	return out.BuildLookAtView(&eye, &c.Center, &c.Up)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the center point in the horizontal yaw frame.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	sy, cy := math.Sin(c.Yaw), math.Cos(c.Yaw)

	// Negate forward so a positive value moves away from the eye
	c.Center[0] += (-sy*forward + cy*right) * speed
	c.Center[2] += (-cy*forward - sy*right) * speed
	c.Center[1] += up * speed
}

// SetCenter sets the camera's center point.
func (c *OrbitCamera) SetCenter(x, y, z float32) {
	c.Center.Set(x, y, z)
}

// FitToBounds centers the camera on the box and backs off far enough to see
// all of it.
func (c *OrbitCamera) FitToBounds(min, max math.Vec3) {
	var size math.Vec3
	c.Center.Add(&min, &max).ScaleInPlace(0.5)
	size.Sub(&max, &min)

	c.Distance = clamp(size.Norm(), c.MinDistance, c.MaxDistance)
	c.Pitch = clamp(0.6, c.MinPitch, c.MaxPitch) // Look down at ~35 degrees
	c.Yaw = 0

	logger.Debug("camera fitted to bounds",
		zap.Float32("distance", c.Distance),
		zap.Float32s("center", c.Center[:]))
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
