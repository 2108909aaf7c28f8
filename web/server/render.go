package server

import (
	"bytes"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// handleRender renders a full frame and responds with a PNG. Render
// statistics are reported in X-Render-* headers.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseSceneRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	world, camera, err := req.setupScene()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger := NewWebLogger(s.nextRequestID(), s.logger)
	logger.Printf("render %s at %dx%d", req.Scene, req.Width, req.Height)

	rt := renderer.NewRaytracer(world, camera, 0, logger)
	canvas, stats := rt.Render()

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas.ToImage()); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Hits", strconv.Itoa(stats.Hits))
	w.Header().Set("X-Render-Workers", strconv.Itoa(stats.Workers))
	w.Header().Set("X-Render-Duration", stats.Duration.String())
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
