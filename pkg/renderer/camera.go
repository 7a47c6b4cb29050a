package renderer

import (
	"github.com/df07/go-reference-raytracer/pkg/core"
)

// CameraConfig contains the pinhole camera parameters
type CameraConfig struct {
	Center         core.Vec3 // Eye point
	AspectRatio    float64   // Viewport width / height
	ViewportHeight float64   // Viewport height in world units at the focal plane
	FocalLength    float64   // Distance from the eye to the viewport along -Z
}

// DefaultCameraConfig returns the 16:9 camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:         core.NewVec3(0, 0, 0),
		AspectRatio:    16.0 / 9.0,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	}
}

// Camera generates primary rays. It holds no mutable state after construction.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a pinhole camera from its configuration
func NewCamera(config CameraConfig) *Camera {
	viewportWidth := config.AspectRatio * config.ViewportHeight

	origin := config.Center
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, config.ViewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray through viewport coordinates (u, v).
// (0,0) is the lower-left corner and (1,1) the upper-right; values outside
// that range address points beyond the viewport edge.
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
