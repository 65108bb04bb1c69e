package integrator

import (
	"math"

	"github.com/tlange/go-interactive-raytracer/pkg/core"
	"github.com/tlange/go-interactive-raytracer/pkg/geometry"
	"github.com/tlange/go-interactive-raytracer/pkg/material"
	"github.com/tlange/go-interactive-raytracer/pkg/scene"
)

// PathTracer implements Monte Carlo path tracing with next-event estimation:
// analytic lights are sampled explicitly at every non-specular bounce, and a
// single stochastic scatter ray carries the indirect contribution.
type PathTracer struct{}

// NewPathTracer creates a path tracing integrator
func NewPathTracer() *PathTracer {
	return &PathTracer{}
}

// RayColor computes radiance for a ray
func (pt *PathTracer) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	return pt.walk(ray, s, sampler, depth, SegmentPrimary, discardRecorder{})
}

// TracePath records the geometric path the traversal takes for a ray
func (pt *PathTracer) TracePath(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int) RayPath {
	rec := newPathRecorder(ray.Origin)
	pt.walk(ray, s, sampler, depth, SegmentPrimary, rec)
	return rec.Path()
}

// walk is the single traversal behind both RayColor and TracePath
func (pt *PathTracer) walk(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int, segment SegmentType, rec recorder) core.Vec3 {
	if depth <= 0 {
		rec.Visit(ray.At(depthExtent), segment, false)
		return core.NewVec3(0, 0, 0)
	}

	hit, isHit := s.Intersect(ray, shadowEpsilon, math.Inf(1))
	if !isHit {
		rec.Visit(ray.At(missExtent), segment, false)
		return SkyColor(ray)
	}
	rec.Visit(hit.Point, segment, true)

	// Direct lighting (next-event estimation). Perfectly specular materials
	// skip it: a stochastic scatter ray has zero probability of hitting an
	// analytic point or directional light.
	direct := core.NewVec3(0, 0, 0)
	if !hit.Material.IsSpecular() {
		direct = pt.directLighting(ray, s, hit)
	}

	// One indirect scatter
	var scatterDirection core.Vec3
	var branch SegmentType
	attenuation := hit.Material.Color

	switch hit.Material.Type {
	case material.TypeMetal:
		reflected := core.Reflect(ray.Direction.Normalize(), hit.Normal)
		perturbation := core.RandomUnitVector(sampler).Multiply(hit.Material.Roughness)
		scatterDirection = reflected.Add(perturbation)
		branch = SegmentReflection
		if scatterDirection.Dot(hit.Normal) <= 0 {
			// Scattered into the surface: energy absorbed
			return direct
		}
	case material.TypeDielectric:
		attenuation = core.NewVec3(1, 1, 1)
		scatterDirection, branch = dielectricBounce(ray.Direction.Normalize(), hit.Normal, hit.Material.IOR, sampler)
	default:
		// Cosine-weighted Lambertian scatter
		scatterDirection = hit.Normal.Add(core.RandomUnitVector(sampler)).Normalize()
		branch = SegmentDiffuse
	}

	scattered := core.NewRay(hit.Point, scatterDirection)
	indirect := pt.walk(scattered, s, sampler, depth-1, branch, rec)
	return direct.Add(attenuation.MultiplyVec(indirect))
}

// directLighting accumulates the contribution of every visible light:
// a Lambertian term for diffuse materials, a half-vector highlight for
// rough metals.
func (pt *PathTracer) directLighting(ray core.Ray, s *scene.Scene, hit *geometry.HitRecord) core.Vec3 {
	direct := core.NewVec3(0, 0, 0)

	for _, light := range s.Lights {
		lightDir, distance := light.DirectionFrom(hit.Point)
		if occluded(s, hit.Point, lightDir, distance) {
			continue
		}

		cosTheta := math.Max(hit.Normal.Dot(lightDir), 0)

		switch hit.Material.Type {
		case material.TypeLambertian:
			contribution := hit.Material.Color.
				MultiplyVec(light.Color).
				Multiply(light.Intensity * cosTheta)
			direct = direct.Add(contribution)
		case material.TypeMetal:
			viewDir := ray.Direction.Normalize().Negate()
			halfway := lightDir.Add(viewDir).Normalize()
			exponent := 2.0 / math.Max(hit.Material.Roughness, 0.01)
			spec := math.Pow(math.Max(hit.Normal.Dot(halfway), 0), exponent)
			contribution := light.Color.
				MultiplyVec(hit.Material.Color).
				Multiply(light.Intensity * spec)
			direct = direct.Add(contribution)
		}
	}

	return direct
}
