package main

import (
	"fmt"
	"os"

	"github.com/df07/go-phong-raytracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-phong-raytracer"
	app.Usage = "render sphere scenes with phong shading"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to an image file",
			Description: `
Cast one ray per pixel into the selected scene and shade the nearest hit with
a single point light. The output format is picked from the file extension
(.ppm or .png).`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 225,
					Usage: "frame height",
				},
				cli.Float64Flag{
					Name:  "fov",
					Usage: "field of view in degrees (default: the scene's own view)",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of parallel row workers (default: logical cores)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:  "intersect",
			Usage: "cast a single ray and list its intersections",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene to intersect",
				},
				cli.StringFlag{
					Name:  "origin",
					Value: "0,0,-5",
					Usage: "ray origin as x,y,z",
				},
				cli.StringFlag{
					Name:  "direction",
					Value: "0,0,1",
					Usage: "ray direction as x,y,z",
				},
			},
			Action: cmd.IntersectRay,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve the render and inspect http api",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to serve on",
				},
			},
			Action: cmd.Serve,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
