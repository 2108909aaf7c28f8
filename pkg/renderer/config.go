package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
	"github.com/df07/go-phong-raytracer/pkg/transform"
	"github.com/klauspost/cpuid/v2"
)

// Config contains rendering configuration. Zero values mean "not set"
// when merging.
type Config struct {
	Width       int        // Image width
	Height      int        // Image height
	FieldOfView float64    // Radians
	From        core.Tuple // Eye position
	To          core.Tuple // Point looked at
	Up          core.Tuple // Approximate up vector
	Workers     int        // Number of parallel row workers
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return ConfigFromView(scene.DefaultView(), 400, 225)
}

// ConfigFromView builds a config for a scene's recommended view
func ConfigFromView(view scene.View, width, height int) Config {
	return Config{
		Width:       width,
		Height:      height,
		FieldOfView: view.FieldOfView,
		From:        view.From,
		To:          view.To,
		Up:          view.Up,
		Workers:     DefaultWorkers(),
	}
}

// DefaultWorkers returns the number of logical cores
func DefaultWorkers() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return 1
}

// MergeConfig returns base with every set field of override applied
func MergeConfig(base, override Config) Config {
	result := base
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.Height > 0 {
		result.Height = override.Height
	}
	if override.FieldOfView > 0 {
		result.FieldOfView = override.FieldOfView
	}
	if override.From != (core.Tuple{}) {
		result.From = override.From
	}
	if override.To != (core.Tuple{}) {
		result.To = override.To
	}
	if override.Up != (core.Tuple{}) {
		result.Up = override.Up
	}
	if override.Workers > 0 {
		result.Workers = override.Workers
	}
	return result
}

// Validate checks that the config can build a camera
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FieldOfView <= 0 || c.FieldOfView >= math.Pi {
		return fmt.Errorf("field of view must be in (0, π), got %g", c.FieldOfView)
	}
	if c.To.Subtract(c.From).Magnitude() == 0 {
		return fmt.Errorf("camera from and to must differ, both are %v", c.From)
	}
	return nil
}

// Camera builds the camera described by the config
func (c Config) Camera() (*Camera, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	camera := NewCamera(c.Width, c.Height, c.FieldOfView)
	if err := camera.SetTransform(transform.ViewTransform(c.From, c.To, c.Up)); err != nil {
		return nil, err
	}
	return camera, nil
}
