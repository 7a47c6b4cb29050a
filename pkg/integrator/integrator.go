package integrator

import (
	"github.com/df07/go-reference-raytracer/pkg/core"
	"github.com/df07/go-reference-raytracer/pkg/geometry"
)

// MinHitDistance is the lower bound of every scattered-ray intersection query.
// Starting above zero keeps a ray from re-hitting the surface it left (shadow acne).
const MinHitDistance = 0.001

// Scene is the read-only view of a world an integrator needs
type Scene interface {
	GetWorld() geometry.Shape
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the linear radiance arriving along a ray
	RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3
}

// BackgroundGradient returns the sky color seen by a ray that escapes the scene.
// It blends bottom (straight down) to top (straight up) on the unit direction's Y.
func BackgroundGradient(r core.Ray, scene Scene) core.Vec3 {
	topColor, bottomColor := scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map Y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Lerp(topColor, t)
}
