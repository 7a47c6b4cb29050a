package renderer

import (
	"github.com/df07/go-reference-raytracer/pkg/core"
	"github.com/df07/go-reference-raytracer/pkg/integrator"
)

// Scene interface to avoid circular imports
type Scene interface {
	integrator.Scene
	GetCamera() *Camera
}

// Raytracer handles the rendering process.
// It renders on the calling goroutine and owns its random stream.
type Raytracer struct {
	scene        Scene
	config       SamplingConfig
	integrator   integrator.Integrator
	sampler      core.Sampler
	logger       core.Logger
	gammaCorrect bool
}

// NewRaytracer creates a path tracing raytracer seeded from config.Seed.
// A nil logger disables progress output.
func NewRaytracer(scene Scene, config SamplingConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Raytracer{
		scene:      scene,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		sampler:    core.NewSeededSampler(config.Seed),
		logger:     logger,
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integ integrator.Integrator) {
	rt.integrator = integ
}

// SetSampler replaces the random stream used for jitter and scattering
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// SetGammaCorrect enables gamma-2 correction at encoding time
func (rt *Raytracer) SetGammaCorrect(enabled bool) {
	rt.gammaCorrect = enabled
}

// RenderPixel accumulates SamplesPerPixel jittered samples for the pixel at (column, row).
// Row 0 is the bottom scanline.
func (rt *Raytracer) RenderPixel(column, row int) PixelStats {
	camera := rt.scene.GetCamera()
	var stats PixelStats

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		u := (float64(column) + rt.sampler.Get1D()) / float64(rt.config.Width-1)
		v := (float64(row) + rt.sampler.Get1D()) / float64(rt.config.Height-1)

		ray := camera.GetRay(u, v)
		stats.AddSample(rt.integrator.RayColor(ray, rt.scene, rt.sampler))
	}

	return stats
}

// Render traces every pixel and streams it to out in raster order
func (rt *Raytracer) Render(out PixelWriter) (RenderStats, error) {
	var stats RenderStats

	if err := out.WriteHeader(rt.config.Width, rt.config.Height); err != nil {
		return stats, err
	}

	for row := rt.config.Height - 1; row >= 0; row-- {
		rt.logger.Printf("\rScanlines remaining: %d ", row)

		for column := 0; column < rt.config.Width; column++ {
			pixel := rt.RenderPixel(column, row)

			r, g, b := EncodeColor(pixel.ColorAccum, pixel.SampleCount, rt.gammaCorrect)
			if err := out.WritePixel(r, g, b); err != nil {
				return stats, err
			}

			stats.TotalPixels++
			stats.TotalSamples += pixel.SampleCount
		}
	}

	if err := out.Flush(); err != nil {
		return stats, err
	}
	rt.logger.Printf("\nDone.\n")

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats, nil
}
