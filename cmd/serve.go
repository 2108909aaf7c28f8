package cmd

import (
	"github.com/df07/go-phong-raytracer/web/server"
	"github.com/urfave/cli"
)

// Serve the HTTP render and inspect API.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	port := ctx.Int("port")
	logger.Noticef("visit http://localhost:%d/api/render to render the default scene", port)
	return server.NewServer(port, logger).Start()
}
