package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-reference-raytracer/pkg/renderer"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"materials scene", "materials", false},
		{"mirrors scene", "mirrors", false},
		{"spheregrid scene", "spheregrid", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	config := renderer.NewSamplingConfig(20, 16.0/9.0, 1, 1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType, config)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene.GetPrimitiveCount() == 0 {
				t.Errorf("Scene '%s' should contain shapes", tt.sceneType)
			}
			if scene.SamplingConfig != config {
				t.Errorf("Scene '%s' should carry the sampling config", tt.sceneType)
			}
		})
	}
}

func TestCreateIntegrator(t *testing.T) {
	for _, name := range []string{"path", "normals"} {
		if integ, err := createIntegrator(name, 5); err != nil || integ == nil {
			t.Errorf("Expected integrator for %q, got %v (%v)", name, integ, err)
		}
	}
	if _, err := createIntegrator("bdpt", 5); err == nil {
		t.Error("Expected error for unknown integrator")
	}
}

func TestRun_PPMToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"-width", "20", "-samples", "1", "-depth", "1"}

	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	output := stdout.String()
	if !strings.HasPrefix(output, "P3\n20 11\n255\n") {
		t.Fatalf("Unexpected header: %q", output[:min(len(output), 20)])
	}
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	if len(lines) != 3+220 {
		t.Errorf("Expected 220 pixel lines, got %d", len(lines)-3)
	}
	if !strings.Contains(stderr.String(), "Scanlines remaining") {
		t.Errorf("Expected progress on stderr, got %q", stderr.String())
	}
}

func TestRun_Quiet(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"-width", "8", "-samples", "1", "-depth", "2", "-quiet", "-integrator", "normals"}

	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if stderr.Len() != 0 {
		t.Errorf("Expected no diagnostics with -quiet, got %q", stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "P3\n8 4\n255\n") {
		t.Errorf("Unexpected header: %q", stdout.String())
	}
}

func TestRun_PNGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.png")
	var stdout, stderr bytes.Buffer
	args := []string{"-width", "16", "-aspect", "2", "-samples", "2", "-depth", "3", "-format", "png", "-o", path, "-quiet"}

	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if stdout.Len() != 0 {
		t.Error("Expected nothing on stdout when writing to a file")
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Errorf("Expected 16x8 image, got %v", img.Bounds())
	}
}

func TestRun_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"-scene", "nonexistent"}},
		{"zero width", []string{"-width", "0"}},
		{"negative aspect", []string{"-aspect", "-1"}},
		{"no samples", []string{"-samples", "0"}},
		{"unknown format", []string{"-format", "exr", "-width", "4"}},
		{"unknown flag", []string{"-bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if err := run(tt.args, &stdout, &stderr); err == nil {
				t.Errorf("Expected error for args %v", tt.args)
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-help"}, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, name := range []string{"default", "materials", "mirrors", "spheregrid"} {
		if !strings.Contains(stderr.String(), name) {
			t.Errorf("Help should list scene %q", name)
		}
	}
}
