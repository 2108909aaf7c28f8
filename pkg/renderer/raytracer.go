package renderer

import (
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Raytracer casts one ray per pixel and shades the nearest hit. The world
// and camera are only read while rendering.
type Raytracer struct {
	world   *scene.World
	camera  *Camera
	workers int
	logger  core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(world *scene.World, camera *Camera, workers int, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	return &Raytracer{
		world:   world,
		camera:  camera,
		workers: workers,
		logger:  logger,
	}
}

// PixelColor shades the ray through pixel (x, y)
func (rt *Raytracer) PixelColor(x, y int) (core.Color, bool) {
	ray := rt.camera.RayForPixel(x, y)
	hit, ok := rt.world.Intersect(ray).Hit()
	if !ok {
		return core.Black, false
	}
	return rt.world.ShadeHit(geometry.PrepareComputations(hit, ray)), true
}

// RenderRow renders row y into canvas and returns the number of hits
func (rt *Raytracer) RenderRow(y int, canvas *Canvas) int {
	hits := 0
	for x := 0; x < rt.camera.HSize; x++ {
		color, hit := rt.PixelColor(x, y)
		if hit {
			hits++
		}
		canvas.WritePixel(x, y, color)
	}
	return hits
}

// Render renders the whole image, spreading rows over the worker pool
func (rt *Raytracer) Render() (*Canvas, RenderStats) {
	canvas := NewCanvas(rt.camera.HSize, rt.camera.VSize)
	start := time.Now()

	pool := NewWorkerPool(rt, canvas, rt.workers)
	rt.logger.Printf("rendering %dx%d with %d workers on %s",
		canvas.Width, canvas.Height, pool.GetNumWorkers(), cpuName())

	pool.Start()
	for y := 0; y < canvas.Height; y++ {
		pool.SubmitTask(RowTask{Y: y})
	}
	pool.Stop()

	stats := RenderStats{
		Width:       canvas.Width,
		Height:      canvas.Height,
		TotalPixels: canvas.Width * canvas.Height,
		Workers:     pool.GetNumWorkers(),
	}
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Rows++
		stats.Hits += result.Hits
	}
	stats.Duration = time.Since(start)

	rt.logger.Printf("render completed in %v (%d/%d pixels hit)", stats.Duration, stats.Hits, stats.TotalPixels)
	return canvas, stats
}
