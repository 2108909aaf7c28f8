package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit           bool                   `json:"hit"`
	ObjectIndex   int                    `json:"objectIndex"`
	Point         [3]float64             `json:"point"`
	Normal        [3]float64             `json:"normal"`
	Distance      float64                `json:"distance"`
	Inside        bool                   `json:"inside"`
	Color         [3]float64             `json:"color"`
	Intersections []float64              `json:"intersections"` // Every t along the ray, ascending
	Material      map[string]interface{} `json:"material,omitempty"`
}

// materialInfo describes a material for the inspector
func materialInfo(m material.Material) map[string]interface{} {
	return map[string]interface{}{
		"color":     hexColor(m.Color),
		"ambient":   m.Ambient,
		"diffuse":   m.Diffuse,
		"specular":  m.Specular,
		"shininess": m.Shininess,
	}
}

func hexColor(c core.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", clampByte(c.R), clampByte(c.G), clampByte(c.B))
}

func clampByte(v float64) int {
	b := int(v * 255)
	if b < 0 {
		return 0
	}
	if b > 255 {
		return 255
	}
	return b
}

func tuple3(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

// inspectRay describes where ray first hits the world
func inspectRay(world *scene.World, ray geometry.Ray) InspectResponse {
	xs := world.Intersect(ray)
	response := InspectResponse{
		ObjectIndex:   -1,
		Intersections: make([]float64, len(xs)),
	}
	for i, x := range xs {
		response.Intersections[i] = x.T
	}

	hit, found := xs.Hit()
	if !found {
		return response
	}

	comps := geometry.PrepareComputations(hit, ray)
	response.Hit = true
	response.Point = tuple3(comps.Point)
	response.Normal = tuple3(comps.NormalV)
	response.Distance = comps.T
	response.Inside = comps.Inside
	color := world.ShadeHit(comps)
	response.Color = [3]float64{color.R, color.G, color.B}
	response.Material = materialInfo(comps.Object.Material())
	for i, obj := range world.Objects {
		if obj == comps.Object {
			response.ObjectIndex = i
			break
		}
	}
	return response
}

// handleInspect casts the ray through one pixel and reports the hit
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := parseSceneRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	world, camera, err := req.setupScene()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ray := camera.RayForPixel(pixelX, pixelY)
	NewWebLogger(s.nextRequestID(), s.logger).Printf("inspect %s pixel (%d, %d): %v", req.Scene, pixelX, pixelY, ray)

	writeJSON(w, http.StatusOK, inspectRay(world, ray))
}
