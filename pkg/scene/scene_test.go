package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/tlange/go-interactive-raytracer/pkg/core"
	"github.com/tlange/go-interactive-raytracer/pkg/geometry"
	"github.com/tlange/go-interactive-raytracer/pkg/material"
)

func TestScene_Intersect_ReturnsClosestHit(t *testing.T) {
	s := NewScene()
	s.Spheres = append(s.Spheres,
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0, material.Default()),
		geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, material.Default()),
	)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := s.Intersect(ray, 0.001, 1000.0)

	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected closest hit at t=1.5, got t=%f", hit.T)
	}
}

func TestScene_Intersect_OrdersAcrossPrimitiveKinds(t *testing.T) {
	// A plane in front of a sphere in front of a cube, all on the same ray
	s := NewScene()
	s.Cubes = append(s.Cubes, geometry.NewCubeAt(core.NewVec3(0, 0, -10), 1.0, material.Default()))
	s.Spheres = append(s.Spheres, geometry.NewSphere(core.NewVec3(0, 0, -6), 1.0, material.Default()))
	s.Planes = append(s.Planes, geometry.NewPlane(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1), material.Default()))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := s.Intersect(ray, 0.001, 1000.0)

	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected plane hit at t=3, got t=%f", hit.T)
	}
}

func TestScene_Intersect_EmptyScene(t *testing.T) {
	s := NewScene()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := s.Intersect(ray, 0.001, 1000.0); isHit {
		t.Error("Expected miss in empty scene")
	}
}

func TestScene_PrimitiveCount(t *testing.T) {
	s := NewDefaultScene()

	expected := len(s.Spheres) + len(s.Cubes) + len(s.Planes)
	if s.PrimitiveCount() != expected {
		t.Errorf("Expected %d primitives, got %d", expected, s.PrimitiveCount())
	}
	if s.PrimitiveCount() == 0 {
		t.Error("Expected default scene to contain primitives")
	}
	if len(s.Lights) == 0 {
		t.Error("Expected default scene to contain lights")
	}
}

func TestScene_Stats(t *testing.T) {
	s := NewStudioScene()
	stats := s.Stats()

	for _, want := range []string{"Spheres", "Cubes", "Planes", "Lights", "Primitives"} {
		if !strings.Contains(stats, want) {
			t.Errorf("Expected stats table to contain %q, got:\n%s", want, stats)
		}
	}
}
