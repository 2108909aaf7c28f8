package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Cast a single ray into a scene and list every intersection along it.
func IntersectRay(ctx *cli.Context) error {
	setupLogging(ctx)

	origin, err := parseTuple(ctx.String("origin"), 1)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid origin: %s", err.Error()), 1)
	}
	direction, err := parseTuple(ctx.String("direction"), 0)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid direction: %s", err.Error()), 1)
	}
	if direction.Magnitude() == 0 {
		return cli.NewExitError("invalid direction: must not be the zero vector", 1)
	}

	world, _, err := scene.Lookup(ctx.String("scene"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	ray := geometry.NewRay(origin, direction)
	logger.Infof("casting %v", ray)
	writeIntersections(ctx.App.Writer, world, ray)
	return nil
}

// parseTuple parses "x,y,z" into a tuple with the given w component.
func parseTuple(value string, w float64) (core.Tuple, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return core.Tuple{}, fmt.Errorf("expected x,y,z, got %q", value)
	}

	var xyz [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Tuple{}, fmt.Errorf("component %d of %q is not a number", i, value)
		}
		xyz[i] = v
	}
	return core.NewTuple(xyz[0], xyz[1], xyz[2], w), nil
}

// writeIntersections prints the sorted intersections of ray with world
// and marks the hit together with its shaded color.
func writeIntersections(w io.Writer, world *scene.World, ray geometry.Ray) {
	xs := world.Intersect(ray)
	hit, found := xs.Hit()

	index := make(map[*geometry.Sphere]int, len(world.Objects))
	for i, obj := range world.Objects {
		index[obj] = i
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "t", "Object", "Hit"})
	marked := false
	for i, x := range xs {
		marker := ""
		if found && !marked && x == hit {
			marker = "*"
			marked = true
		}
		table.Append([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%.5f", x.T),
			fmt.Sprintf("%d", index[x.Object]),
			marker,
		})
	}

	color := "miss"
	if found {
		color = world.ShadeHit(geometry.PrepareComputations(hit, ray)).String()
	}
	table.SetFooter([]string{"", "", "COLOR", color})
	table.Render()
}
