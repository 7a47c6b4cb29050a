package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/df07/go-reference-raytracer/pkg/core"
	"github.com/df07/go-reference-raytracer/pkg/integrator"
	"github.com/df07/go-reference-raytracer/pkg/renderer"
	"github.com/df07/go-reference-raytracer/pkg/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, renders the selected scene and writes the image to stdout
// or the -o file. Diagnostics go to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	flags.SetOutput(stderr)

	sceneType := flags.String("scene", "default", "Scene to render (see -help)")
	integratorType := flags.String("integrator", "path", "Integrator: 'path' or 'normals'")
	width := flags.Int("width", 400, "Image width in pixels")
	aspectRatio := flags.Float64("aspect", 16.0/9.0, "Aspect ratio (width / height)")
	samples := flags.Int("samples", 100, "Samples per pixel")
	maxDepth := flags.Int("depth", 50, "Maximum ray bounce depth")
	seed := flags.Int64("seed", 42, "Random seed")
	gamma := flags.Bool("gamma", false, "Apply gamma 2 correction")
	format := flags.String("format", "ppm", "Output format: 'ppm' or 'png'")
	outputPath := flags.String("o", "", "Output file (default stdout)")
	quiet := flags.Bool("quiet", false, "Suppress progress output")
	help := flags.Bool("help", false, "Show help information")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *help {
		printHelp(stderr, flags)
		return nil
	}

	if *aspectRatio <= 0 {
		return fmt.Errorf("aspect ratio must be positive, got %f", *aspectRatio)
	}
	config := renderer.NewSamplingConfig(*width, *aspectRatio, *samples, *maxDepth)
	config.Seed = *seed
	if err := config.Validate(); err != nil {
		return err
	}

	selectedScene, err := createScene(*sceneType, config)
	if err != nil {
		return err
	}

	integ, err := createIntegrator(*integratorType, config.MaxDepth)
	if err != nil {
		return err
	}

	var logger core.Logger
	if !*quiet {
		logger = renderer.NewDefaultLogger(stderr)
	}

	out := stdout
	if *outputPath != "" {
		file, err := os.Create(*outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	writer, err := createWriter(*format, out)
	if err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(selectedScene, config, logger)
	raytracer.SetIntegrator(integ)
	raytracer.SetGammaCorrect(*gamma)

	startTime := time.Now()
	stats, err := raytracer.Render(writer)
	if err != nil {
		return err
	}

	if !*quiet {
		fmt.Fprintf(stderr, "Rendered %d pixels (%d samples, %.1f per pixel) in %v\n",
			stats.TotalPixels, stats.TotalSamples, stats.AverageSamples, time.Since(startTime))
		if *outputPath != "" {
			fmt.Fprintf(stderr, "Render saved as %s\n", *outputPath)
		}
	}
	return nil
}

// createScene builds a built-in scene by name
func createScene(sceneType string, config renderer.SamplingConfig) (*scene.Scene, error) {
	return scene.Create(sceneType, config)
}

// createIntegrator selects the light transport algorithm
func createIntegrator(integratorType string, maxDepth int) (integrator.Integrator, error) {
	switch integratorType {
	case "path":
		return integrator.NewPathTracingIntegrator(maxDepth), nil
	case "normals":
		return integrator.NewNormalIntegrator(), nil
	default:
		return nil, fmt.Errorf("unknown integrator %q", integratorType)
	}
}

// createWriter selects the image encoding
func createWriter(format string, w io.Writer) (renderer.PixelWriter, error) {
	switch format {
	case "ppm":
		return renderer.NewPPMWriter(w), nil
	case "png":
		return renderer.NewPNGWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func printHelp(w io.Writer, flags *flag.FlagSet) {
	fmt.Fprintln(w, "Reference Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options] > image.ppm")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flags.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-11s %s\n", info.Name, info.Description)
	}
}
