package integrator

import (
	"math"

	"github.com/df07/go-reference-raytracer/pkg/core"
)

// PathTracingIntegrator implements unidirectional path tracing with a fixed bounce budget
type PathTracingIntegrator struct {
	MaxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3 {
	return pt.rayColorRecursive(ray, scene, sampler, pt.MaxDepth)
}

// rayColorRecursive returns the radiance along r with depth bounces remaining
func (pt *PathTracingIntegrator) rayColorRecursive(r core.Ray, scene Scene, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := scene.GetWorld().Hit(r, MinHitDistance, math.Inf(1))
	if !isHit {
		return BackgroundGradient(r, scene)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(
		pt.rayColorRecursive(scatter.Scattered, scene, sampler, depth-1))
}
