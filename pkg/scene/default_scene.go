package scene

import (
	"math"

	"github.com/tlange/go-interactive-raytracer/pkg/core"
	"github.com/tlange/go-interactive-raytracer/pkg/geometry"
	"github.com/tlange/go-interactive-raytracer/pkg/lights"
	"github.com/tlange/go-interactive-raytracer/pkg/material"
)

// NewDefaultScene creates the showcase scene: a gray floor, five cubes in a
// circle each carrying a sphere with a different material, and a three-point
// light rig.
func NewDefaultScene() *Scene {
	s := NewScene()

	// Floor
	floor := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	floor.Specular = 0.0
	floor.Shininess = 0.0
	floor.Roughness = 1.0
	s.Planes = append(s.Planes, geometry.NewPlane(
		core.NewVec3(0, -0.5, 0),
		core.NewVec3(0, 1, 0),
		floor,
	))

	pedestal := material.NewLambertian(core.NewVec3(0.1, 0.8, 0.8))
	pedestal.Specular = 0.0
	pedestal.Shininess = 0.0
	pedestal.Roughness = 1.0

	sphereMaterials := []material.Material{
		redLambertian(),
		mirrorMetal(),
		glass(),
		roughBlueMetal(),
		yellowLambertian(),
	}

	// Five cube pedestals with spheres on top, arranged in a circle
	const count = 5
	const radius = 3.0
	for i := 0; i < count; i++ {
		angle := float64(i) / count * 2 * math.Pi
		x := math.Cos(angle) * radius
		z := math.Sin(angle) * radius

		s.Cubes = append(s.Cubes, geometry.NewCube(
			core.NewVec3(x-0.5, -0.5, z-0.5),
			core.NewVec3(x+0.5, 0.5, z+0.5),
			pedestal,
		))
		s.Spheres = append(s.Spheres, geometry.NewSphere(
			core.NewVec3(x, 1.0, z), 0.5, sphereMaterials[i],
		))
	}

	// Three-point lighting: warm key, cool fill, white rim
	s.Lights = append(s.Lights,
		lights.NewPointLight(core.NewVec3(5, 6, 4), core.NewVec3(1.0, 0.98, 0.95), 0.8),
		lights.NewPointLight(core.NewVec3(-4, 3, 3), core.NewVec3(0.95, 0.98, 1.0), 0.4),
		lights.NewPointLight(core.NewVec3(0, 7, -5), core.NewVec3(1, 1, 1), 0.5),
	)

	return s
}

// NewStudioScene creates a smaller scene with one sphere of each material
// kind on a floor plane, lit by a point light and a directional light.
func NewStudioScene() *Scene {
	s := NewScene()

	floor := material.NewLambertian(core.NewVec3(0.6, 0.6, 0.6))
	floor.Specular = 0.0
	floor.Roughness = 1.0
	s.Planes = append(s.Planes, geometry.NewPlane(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		floor,
	))

	s.Spheres = append(s.Spheres,
		geometry.NewSphere(core.NewVec3(-2.2, 1, 0), 1.0, redLambertian()),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass()),
		geometry.NewSphere(core.NewVec3(2.2, 1, 0), 1.0, mirrorMetal()),
	)

	s.Lights = append(s.Lights,
		lights.NewPointLight(core.NewVec3(4, 6, 3), core.NewVec3(1, 1, 1), 0.7),
		lights.NewDirectionalLight(core.NewVec3(-1, -1, -0.5), core.NewVec3(0.9, 0.9, 1.0), 0.3),
	)

	return s
}

func redLambertian() material.Material {
	m := material.NewLambertian(core.NewVec3(0.8, 0.1, 0.1))
	m.Roughness = 0.1
	return m
}

func mirrorMetal() material.Material {
	m := material.NewMetal(core.NewVec3(0.6, 0.6, 0.6), 0.1)
	m.Specular = 0.7
	m.Shininess = 64.0
	m.Reflectivity = 0.8
	return m
}

func glass() material.Material {
	m := material.NewDielectric(1.52)
	m.Specular = 1.0
	m.Shininess = 100.0
	m.Reflectivity = 0.1
	return m
}

func roughBlueMetal() material.Material {
	m := material.NewMetal(core.NewVec3(0.1, 0.1, 0.8), 0.4)
	m.Reflectivity = 0.4
	return m
}

func yellowLambertian() material.Material {
	m := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.1))
	m.Roughness = 0.1
	return m
}
