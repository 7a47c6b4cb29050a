package integrator

import (
	"math"

	"github.com/df07/go-reference-raytracer/pkg/core"
)

// NormalIntegrator shades the first hit by its surface normal.
// It ignores materials and is useful for checking geometry and camera setup.
type NormalIntegrator struct{}

// NewNormalIntegrator creates a normal-visualizing integrator
func NewNormalIntegrator() *NormalIntegrator {
	return &NormalIntegrator{}
}

// RayColor maps the hit normal from [-1,1] to [0,1] per channel
func (n *NormalIntegrator) RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3 {
	hit, isHit := scene.GetWorld().Hit(ray, 0, math.Inf(1))
	if !isHit {
		return BackgroundGradient(ray, scene)
	}
	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
