package integrator

import (
	"testing"

	"github.com/df07/go-reference-raytracer/pkg/core"
	"github.com/df07/go-reference-raytracer/pkg/geometry"
)

func TestNormalIntegrator(t *testing.T) {
	scene := newSkyScene(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, nil))
	n := NewNormalIntegrator()
	sampler := core.NewSeededSampler(42)

	// Head-on hit: normal (0,0,1) maps to (0.5,0.5,1)
	hitRay := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	assertColor(t, n.RayColor(hitRay, scene, sampler), core.NewVec3(0.5, 0.5, 1.0))

	// Miss falls back to the sky
	missRay := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	assertColor(t, n.RayColor(missRay, scene, sampler), skyBlue)
}
