package integrator

import (
	"math/rand"
	"testing"

	"github.com/tlange/go-interactive-raytracer/pkg/core"
	"github.com/tlange/go-interactive-raytracer/pkg/geometry"
	"github.com/tlange/go-interactive-raytracer/pkg/lights"
	"github.com/tlange/go-interactive-raytracer/pkg/material"
	"github.com/tlange/go-interactive-raytracer/pkg/scene"
)

func TestPathTracer_RayColor_DepthExhausted(t *testing.T) {
	pt := NewPathTracer()
	s := scene.NewDefaultScene()
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	color := pt.RayColor(ray, s, stubSampler{}, 0)

	if color != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected black at depth 0, got %v", color)
	}
}

func TestPathTracer_RayColor_MissReturnsSky(t *testing.T) {
	pt := NewPathTracer()
	s := scene.NewScene()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))

	color := pt.RayColor(ray, s, stubSampler{}, 3)

	expected := core.NewVec3(1, 1, 1)
	if color.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected sky color %v, got %v", expected, color)
	}
}

func TestPathTracer_RayColor_LambertianDirectLighting(t *testing.T) {
	// Depth 1 leaves no budget for the indirect bounce, so the result is the
	// direct term alone. Head-on light gives cosine 1.
	pt := NewPathTracer()
	s := scene.NewScene()
	baseColor := core.NewVec3(0.6, 0.3, 0.1)
	s.Spheres = append(s.Spheres, geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewLambertian(baseColor)))
	s.Lights = append(s.Lights, lights.NewPointLight(core.NewVec3(0, 0, 10), core.NewVec3(1, 1, 1), 1.0))

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	color := pt.RayColor(ray, s, stubSampler{}, 1)

	if color.Subtract(baseColor).Length() > 1e-9 {
		t.Errorf("Expected direct contribution %v, got %v", baseColor, color)
	}
}

func TestPathTracer_RayColor_SpecularSkipsDirectLighting(t *testing.T) {
	// A dielectric at depth 1: no direct term, and the single scatter ray
	// exhausts the budget, so the total is black
	pt := NewPathTracer()
	s := scene.NewScene()
	s.Spheres = append(s.Spheres, geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewDielectric(1.5)))
	s.Lights = append(s.Lights, lights.NewPointLight(core.NewVec3(0, 0, 10), core.NewVec3(1, 1, 1), 1.0))

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	color := pt.RayColor(ray, s, stubSampler{value1D: 0.5}, 1)

	if color != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected black, got %v", color)
	}
}

func TestPathTracer_RayColor_MetalAbsorbsInwardScatter(t *testing.T) {
	// The sampler yields the unit vector (0, 0, -1), so a roughness above 1
	// perturbs the head-on reflection back into the surface and the bounce is
	// absorbed. With no lights the rough metal then contributes nothing.
	pt := NewPathTracer()
	s := scene.NewScene()
	s.Spheres = append(s.Spheres, geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 1.5)))

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	color := pt.RayColor(ray, s, stubSampler{value2D: core.NewVec2(1, 0)}, 5)

	if color != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected absorbed bounce to return black, got %v", color)
	}
}

func TestPathTracer_RayColor_SeededDeterminism(t *testing.T) {
	pt := NewPathTracer()
	s := scene.NewDefaultScene()
	ray := core.NewRay(core.NewVec3(0, 1, 5), core.NewVec3(0, -0.2, -1).Normalize())

	a := pt.RayColor(ray, s, core.NewRandomSampler(rand.New(rand.NewSource(42))), 5)
	b := pt.RayColor(ray, s, core.NewRandomSampler(rand.New(rand.NewSource(42))), 5)

	if a != b {
		t.Errorf("Expected identical results for identical seeds, got %v and %v", a, b)
	}
}
