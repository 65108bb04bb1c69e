package geometry

import (
	"math"

	"github.com/tlange/go-interactive-raytracer/pkg/core"
	"github.com/tlange/go-interactive-raytracer/pkg/material"
)

// Cube represents an axis-aligned box between two corner points
type Cube struct {
	Min      core.Vec3
	Max      core.Vec3
	Material material.Material
}

// NewCube creates a new axis-aligned cube from its minimum and maximum corners
func NewCube(minCorner, maxCorner core.Vec3, mat material.Material) *Cube {
	return &Cube{
		Min:      minCorner,
		Max:      maxCorner,
		Material: mat,
	}
}

// NewCubeAt creates a cube centered at the given point with the given half-extent
func NewCubeAt(center core.Vec3, halfExtent float64, mat material.Material) *Cube {
	offset := core.NewVec3(halfExtent, halfExtent, halfExtent)
	return NewCube(center.Subtract(offset), center.Add(offset), mat)
}

// Intersect tests the ray against the cube using the slab method: the valid
// parameter interval is narrowed by each axis's pair of bounding planes, and
// the axis producing the final entry distance supplies the hit normal.
func (c *Cube) Intersect(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	tNear := tMin
	tFar := tMax
	normal := core.NewVec3(0, 0, 0)

	origins := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	directions := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	minVals := [3]float64{c.Min.X, c.Min.Y, c.Min.Z}
	maxVals := [3]float64{c.Max.X, c.Max.Y, c.Max.Z}

	for axis := 0; axis < 3; axis++ {
		origin := origins[axis]
		direction := directions[axis]

		if math.Abs(direction) < 1e-6 {
			// Ray runs parallel to this slab; it can only pass if the
			// origin already lies between the two planes
			if origin < minVals[axis] || origin > maxVals[axis] {
				return nil, false
			}
			continue
		}

		t1 := (minVals[axis] - origin) / direction
		t2 := (maxVals[axis] - origin) / direction

		entry, exit := t1, t2
		sign := -1.0
		if t1 > t2 {
			entry, exit = t2, t1
			sign = 1.0
		}

		if entry > tNear {
			tNear = entry
			normal = core.NewVec3(0, 0, 0)
			switch axis {
			case 0:
				normal.X = sign
			case 1:
				normal.Y = sign
			case 2:
				normal.Z = sign
			}
		}
		if exit < tFar {
			tFar = exit
		}
		if tNear > tFar {
			return nil, false
		}
	}

	return &HitRecord{
		T:        tNear,
		Point:    ray.At(tNear),
		Normal:   normal,
		Material: c.Material,
	}, true
}
