package integrator

import (
	"math"

	"github.com/tlange/go-interactive-raytracer/pkg/core"
	"github.com/tlange/go-interactive-raytracer/pkg/scene"
)

const (
	// shadowEpsilon offsets secondary rays from the surface they were
	// spawned on to avoid self-intersection
	shadowEpsilon = 0.001

	// Cosmetic segment lengths used by the path recorder when a ray leaves
	// the scene or runs out of bounces
	missExtent  = 5.0
	depthExtent = 2.0
)

// Integrator is a depth-bounded light transport algorithm. RayColor computes
// radiance for a ray; TracePath walks the identical branching decisions but
// records the visited points and per-segment classification instead.
type Integrator interface {
	RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int) core.Vec3
	TracePath(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int) RayPath
}

// SkyColor returns the analytic background: a vertical blend between white
// at the horizon's lower half and light blue at the top.
func SkyColor(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.NewVec3(1, 1, 1).Lerp(core.NewVec3(0.5, 0.7, 1.0), t)
}

// occluded reports whether anything blocks the segment from point toward
// dir within maxDistance
func occluded(s *scene.Scene, point, dir core.Vec3, maxDistance float64) bool {
	_, blocked := s.Intersect(core.NewRay(point, dir), shadowEpsilon, maxDistance)
	return blocked
}

// dielectricBounce picks reflection or refraction at a dielectric interface.
// The refraction ratio depends on which side of the surface the ray entered;
// total internal reflection and Schlick reflectance decide the branch, the
// latter stochastically.
func dielectricBounce(unitDirection, outwardNormal core.Vec3, ior float64, sampler core.Sampler) (core.Vec3, SegmentType) {
	normal := outwardNormal
	refractionRatio := 1.0 / ior
	if unitDirection.Dot(outwardNormal) >= 0 {
		// Exiting the medium
		normal = outwardNormal.Negate()
		refractionRatio = ior
	}

	cosTheta := math.Min(unitDirection.Negate().Dot(normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0
	if cannotRefract || core.Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		return core.Reflect(unitDirection, normal), SegmentReflection
	}
	return core.Refract(unitDirection, normal, refractionRatio), SegmentRefraction
}
