package geometry

import (
	"github.com/tlange/go-interactive-raytracer/pkg/core"
	"github.com/tlange/go-interactive-raytracer/pkg/material"
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float64           // Parameter t along the ray
	Point    core.Vec3         // Point of intersection
	Normal   core.Vec3         // Unit outward surface normal at the intersection
	Material material.Material // Copy of the hit object's material
}

// Primitive is implemented by shapes that can be intersected by rays.
// Intersect returns the nearest hit with t in [tMin, tMax], or false.
type Primitive interface {
	Intersect(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
}
