package camera

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/neo3d/internal/config"
	"github.com/Faultbox/neo3d/internal/logger"
	"github.com/Faultbox/neo3d/pkg/math"
)

// Projection is a symmetric perspective projection.
type Projection struct {
	FOV    float32 // horizontal field of view, radians
	Aspect float32
	Near   float32
	Far    float32
}

// NewProjection returns a 60 degree projection for a 16:9 viewport.
func NewProjection() Projection {
	return Projection{
		FOV:    60 * math.Deg2Rad,
		Aspect: 16.0 / 9.0,
		Near:   0.1,
		Far:    1000,
	}
}

// SetViewport updates the aspect ratio from a viewport size in pixels.
// A null height leaves the projection unchanged.
func (p *Projection) SetViewport(width, height int) {
	if height <= 0 {
		return
	}
	p.Aspect = float32(width) / float32(height)
}

// Matrix writes the projection matrix to out.
func (p *Projection) Matrix(out *math.Mat4) *math.Mat4 {
	return out.BuildPerspectiveProj(p.FOV, p.Aspect, p.Near, p.Far)
}

// ProjectionFromConfig converts the camera section of the config, whose angles
// are in degrees.
func ProjectionFromConfig(cfg config.CameraConfig) Projection {
	return Projection{
		FOV:    cfg.FOV * math.Deg2Rad,
		Aspect: cfg.Aspect,
		Near:   cfg.Near,
		Far:    cfg.Far,
	}
}

// FromConfig builds the viewer described by the camera section of the
// config: an orbit camera around Target or a first-person camera at Eye.
func FromConfig(cfg config.CameraConfig) (Viewer, error) {
	pitch := cfg.Pitch * math.Deg2Rad
	yaw := cfg.Yaw * math.Deg2Rad

	switch cfg.Mode {
	case config.CameraOrbit:
		c := NewOrbitCamera()
		c.Center = cfg.Target
		c.Up = cfg.Up
		c.Distance = clamp(cfg.Distance, c.MinDistance, c.MaxDistance)
		c.Pitch = clamp(pitch, c.MinPitch, c.MaxPitch)
		c.Yaw = yaw
		logger.Debug("orbit camera",
			zap.Float32s("center", c.Center[:]),
			zap.Float32("distance", c.Distance),
			zap.Float32("pitch", c.Pitch),
			zap.Float32("yaw", c.Yaw))
		return c, nil
	case config.CameraFPS:
		c := NewFPSCamera(cfg.Eye)
		c.SetAngles(pitch, yaw)
		logger.Debug("fps camera",
			zap.Float32s("eye", c.Eye[:]),
			zap.Float32("pitch", c.Pitch),
			zap.Float32("yaw", c.Yaw))
		return c, nil
	default:
		return nil, fmt.Errorf("unknown camera mode %q", cfg.Mode)
	}
}
