package scene

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"github.com/tlange/go-interactive-raytracer/pkg/core"
	"github.com/tlange/go-interactive-raytracer/pkg/geometry"
	"github.com/tlange/go-interactive-raytracer/pkg/lights"
)

// Scene is a flat aggregate of primitives and lights. There is no spatial
// index; closest-hit queries scan every primitive.
type Scene struct {
	Spheres []*geometry.Sphere
	Cubes   []*geometry.Cube
	Planes  []*geometry.Plane
	Lights  []lights.Light
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// Intersect finds the closest hit along the ray across all primitives.
// Each accepted hit shrinks the upper bound of the acceptance window, so
// later primitives can only replace it with something strictly closer.
func (s *Scene) Intersect(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool) {
	var closestHit *geometry.HitRecord
	closestT := tMax

	for _, sphere := range s.Spheres {
		if hit, isHit := sphere.Intersect(ray, tMin, closestT); isHit {
			closestT = hit.T
			closestHit = hit
		}
	}
	for _, cube := range s.Cubes {
		if hit, isHit := cube.Intersect(ray, tMin, closestT); isHit {
			closestT = hit.T
			closestHit = hit
		}
	}
	for _, plane := range s.Planes {
		if hit, isHit := plane.Intersect(ray, tMin, closestT); isHit {
			closestT = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// PrimitiveCount returns the total number of primitives in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.Spheres) + len(s.Cubes) + len(s.Planes)
}

// Stats builds a tabular representation of scene statistics
func (s *Scene) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Element", "Count"})
	table.Append([]string{"Spheres", fmt.Sprintf("%d", len(s.Spheres))})
	table.Append([]string{"Cubes", fmt.Sprintf("%d", len(s.Cubes))})
	table.Append([]string{"Planes", fmt.Sprintf("%d", len(s.Planes))})
	table.Append([]string{"Lights", fmt.Sprintf("%d", len(s.Lights))})
	table.SetFooter([]string{"Primitives", fmt.Sprintf("%d", s.PrimitiveCount())})
	table.Render()
	return buf.String()
}
