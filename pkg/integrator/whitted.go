package integrator

import (
	"math"

	"github.com/tlange/go-interactive-raytracer/pkg/core"
	"github.com/tlange/go-interactive-raytracer/pkg/material"
	"github.com/tlange/go-interactive-raytracer/pkg/scene"
)

// ambientFactor scales the material color into a constant ambient term
const ambientFactor = 0.1

// Whitted implements recursive deterministic raytracing: direct Phong
// lighting with shadow rays, additive mirror reflection, and stochastic
// reflect-or-refract at dielectric interfaces.
type Whitted struct{}

// NewWhitted creates a Whitted-style raytracing integrator
func NewWhitted() *Whitted {
	return &Whitted{}
}

// RayColor computes radiance for a ray
func (w *Whitted) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	return w.walk(ray, s, sampler, depth, SegmentPrimary, discardRecorder{})
}

// TracePath records the geometric path the traversal takes for a ray
func (w *Whitted) TracePath(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int) RayPath {
	rec := newPathRecorder(ray.Origin)
	w.walk(ray, s, sampler, depth, SegmentPrimary, rec)
	return rec.Path()
}

// walk is the single traversal behind both RayColor and TracePath. segment
// classifies the ray being traced; rec is told where each segment ends.
func (w *Whitted) walk(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int, segment SegmentType, rec recorder) core.Vec3 {
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

	// Glass replaces local shading entirely: the chosen secondary ray's
	// radiance is returned as-is.
	if hit.Material.Type == material.TypeDielectric {
		direction, branch := dielectricBounce(ray.Direction.Normalize(), hit.Normal, hit.Material.IOR, sampler)
		return w.walk(core.NewRay(hit.Point, direction), s, sampler, depth-1, branch, rec)
	}

	// Ambient
	color := hit.Material.Color.Multiply(ambientFactor)

	// Diffuse and specular per light, gated by a shadow ray
	viewDir := ray.Direction.Normalize().Negate()
	for _, light := range s.Lights {
		lightDir, distance := light.DirectionFrom(hit.Point)
		if occluded(s, hit.Point, lightDir, distance) {
			continue
		}

		diff := math.Max(hit.Normal.Dot(lightDir), 0)
		color = color.Add(hit.Material.Color.MultiplyVec(light.Color).Multiply(diff * light.Intensity))

		reflectDir := core.Reflect(lightDir.Negate(), hit.Normal)
		spec := math.Pow(math.Max(viewDir.Dot(reflectDir), 0), hit.Material.Shininess)
		color = color.Add(light.Color.Multiply(hit.Material.Specular * spec * light.Intensity))
	}

	// Mirror reflection, additive on top of direct lighting
	if hit.Material.Reflectivity > 0 {
		reflected := core.NewRay(hit.Point, core.Reflect(ray.Direction, hit.Normal))
		reflectedColor := w.walk(reflected, s, sampler, depth-1, SegmentReflection, rec)
		color = color.Add(reflectedColor.Multiply(hit.Material.Reflectivity))
	}

	return color
}
