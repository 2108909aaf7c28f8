package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/log"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
	"github.com/urfave/cli"
)

// Render a still frame of a built-in scene.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	world, view, err := scene.Lookup(ctx.String("scene"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	defaults := renderer.DefaultConfig()
	cfg := renderer.MergeConfig(renderer.ConfigFromView(view, defaults.Width, defaults.Height), renderer.Config{
		Width:       ctx.Int("width"),
		Height:      ctx.Int("height"),
		FieldOfView: ctx.Float64("fov") * math.Pi / 180,
		Workers:     ctx.Int("workers"),
	})

	camera, err := cfg.Camera()
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid camera: %s", err.Error()), 1)
	}

	rt := renderer.NewRaytracer(world, camera, cfg.Workers, log.Printer{Logger: logger})
	canvas, stats := rt.Render()

	out := ctx.String("out")
	if err := writeCanvas(out, canvas); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", out)

	displayRenderStats(stats)
	return nil
}

// writeCanvas saves the canvas as PPM or PNG depending on the file extension.
func writeCanvas(path string, canvas *renderer.Canvas) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".ppm" && ext != ".png" {
		return fmt.Errorf("unsupported output format %q (use .ppm or .png)", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	if ext == ".ppm" {
		err = canvas.WritePPM(f)
	} else {
		err = png.Encode(f, canvas.ToImage())
	}
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	return f.Close()
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	stats.WriteTable(&buf)
	logger.Noticef("frame statistics\n%s", buf.String())
}
