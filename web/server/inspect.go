package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Object       int                    `json:"object"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// extractMaterialInfo describes a material for the inspector
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"ambient":   toArray(mat.Ambient),
		"diffuse":   toArray(mat.Diffuse),
		"specular":  toArray(mat.Specular),
		"shininess": mat.Shininess,
		"color": fmt.Sprintf("#%02x%02x%02x",
			int(min(mat.Diffuse.X, 1)*255), int(min(mat.Diffuse.Y, 1)*255), int(min(mat.Diffuse.Z, 1)*255)),
	}

	if mat.Glass {
		properties["refractiveIndex"] = mat.RefractiveIndex
		return "glass", properties
	}
	return "phong", properties
}

// extractGeometryInfo describes a shape for the inspector
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = toArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties
	default:
		return "unknown", properties
	}
}

// inspectPixel casts the primary ray through pixel (x, y) of a width x height
// raster and describes the first object it hits
func inspectPixel(sceneObj *scene.Scene, width, height, x, y int) (InspectResponse, error) {
	sceneObj.RLock()
	defer sceneObj.RUnlock()

	camera, err := sceneObj.ActiveCamera()
	if err != nil {
		return InspectResponse{}, err
	}

	ray := camera.Viewport(width, height).GetRay(x, y)
	hit, index := integrator.ClosestHit(ray, sceneObj)
	if hit == nil {
		return InspectResponse{Hit: false, Object: -1}, nil
	}

	obj := sceneObj.GetObjects()[index]
	materialType, materialProps := extractMaterialInfo(obj.Material)
	geometryType, geometryProps := extractGeometryInfo(obj.Shape)

	return InspectResponse{
		Hit:          true,
		Object:       index,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        toArray(hit.Point),
		Normal:       toArray(hit.Normal),
		Distance:     hit.T,
		Inside:       hit.Inside,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	}, nil
}

// handleInspect handles ray casting inspection requests.
// Pixel coordinates use the renderer's convention: (0, 0) is the bottom-left pixel.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	width, err := parseIntParam(query, "width", defaultSize, 1, maxSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	height, err := parseIntParam(query, "height", defaultSize, 1, maxSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if query.Get("x") == "" || query.Get("y") == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing pixel coordinates"))
		return
	}
	x, err := parseIntParam(query, "x", 0, 0, width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	y, err := parseIntParam(query, "y", 0, 0, height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	response, err := inspectPixel(s.scene, width, height, x, y)
	if err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
