package scene

import (
	"github.com/df07/go-reference-raytracer/pkg/core"
	"github.com/df07/go-reference-raytracer/pkg/material"
	"github.com/df07/go-reference-raytracer/pkg/renderer"
)

// NewDefaultScene creates a small diffuse sphere resting on a large ground sphere
func NewDefaultScene(samplingConfig renderer.SamplingConfig) *Scene {
	s := New(renderer.DefaultCameraConfig(), samplingConfig)

	// One material shared by both spheres
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, gray)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, gray)

	return s
}

// NewMaterialsScene creates a row of diffuse and metal spheres on a yellow ground
func NewMaterialsScene(samplingConfig renderer.SamplingConfig) *Scene {
	s := New(renderer.DefaultCameraConfig(), samplingConfig)

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	left := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)
	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, center)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, left)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, right)

	return s
}

// NewMirrorScene creates perfect mirrors that reflect the sky and each other
func NewMirrorScene(samplingConfig renderer.SamplingConfig) *Scene {
	s := New(renderer.DefaultCameraConfig(), samplingConfig)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	chrome := material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0)
	copper := material.NewMetal(core.NewVec3(0.95, 0.64, 0.54), 0.0)

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)
	s.AddSphere(core.NewVec3(-0.55, 0, -1.2), 0.5, chrome)
	s.AddSphere(core.NewVec3(0.55, 0, -1.2), 0.5, copper)

	return s
}
