package scene

import (
	"github.com/df07/go-reference-raytracer/pkg/core"
	"github.com/df07/go-reference-raytracer/pkg/geometry"
	"github.com/df07/go-reference-raytracer/pkg/material"
	"github.com/df07/go-reference-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	World          *geometry.ShapeList // Objects in the scene
	TopColor       core.Vec3           // Sky color straight up
	BottomColor    core.Vec3           // Sky color straight down
	SamplingConfig renderer.SamplingConfig
}

// New creates an empty scene with the default sky gradient.
// The camera adopts the sampling config's aspect ratio when one is set.
func New(cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig) *Scene {
	if samplingConfig.AspectRatio > 0 {
		cameraConfig.AspectRatio = samplingConfig.AspectRatio
	}
	return &Scene{
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		World:          geometry.NewShapeList(),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0), // Sky blue
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0), // White
		SamplingConfig: samplingConfig,
	}
}

// AddSphere adds a sphere to the world and returns it
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, mat)
	s.World.Add(sphere)
	return sphere
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld implements integrator.Scene
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetBackgroundColors implements integrator.Scene
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetPrimitiveCount returns the number of shapes in the world
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}
