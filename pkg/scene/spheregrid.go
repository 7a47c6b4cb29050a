package scene

import (
	"math"

	"github.com/df07/go-reference-raytracer/pkg/core"
	"github.com/df07/go-reference-raytracer/pkg/material"
	"github.com/df07/go-reference-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to linear RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

const (
	gridColumns = 7
	gridRows    = 4
)

// NewSphereGridScene creates a grid of small spheres sweeping the hue wheel.
// Even cells are diffuse, odd cells are polished metal.
func NewSphereGridScene(samplingConfig renderer.SamplingConfig) *Scene {
	s := New(renderer.DefaultCameraConfig(), samplingConfig)

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	const radius = 0.2
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridColumns; col++ {
			index := row*gridColumns + col
			hue := 360.0 * float64(index) / float64(gridColumns*gridRows)
			albedo := oklchToRGB(0.7, 0.15, hue)

			var mat material.Material
			if index%2 == 0 {
				mat = material.NewLambertian(albedo)
			} else {
				mat = material.NewMetal(albedo, 0.1)
			}

			center := core.NewVec3(
				(float64(col)-float64(gridColumns-1)/2)*0.55,
				-0.5+radius,
				-1.2-float64(row)*0.6,
			)
			s.AddSphere(center, radius, mat)
		}
	}

	return s
}
