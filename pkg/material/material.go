package material

import (
	"github.com/tlange/go-interactive-raytracer/pkg/core"
)

// Type tags the shading model of a material
type Type string

const (
	TypeLambertian Type = "lambertian"
	TypeMetal      Type = "metal"
	TypeDielectric Type = "dielectric"
)

// Material describes how a surface responds to light. It is a plain value:
// primitives hold a copy and every hit record carries another.
type Material struct {
	Color        core.Vec3 // Base color in linear RGB
	Specular     float64   // Phong specular strength
	Shininess    float64   // Phong shininess exponent
	Reflectivity float64   // Legacy mirror-reflection weight for the Whitted mode
	Roughness    float64   // Scatter perturbation for metals
	IOR          float64   // Index of refraction for dielectrics
	Type         Type
}

// Default returns a white Lambertian material with moderate specular response
func Default() Material {
	return Material{
		Color:        core.NewVec3(1, 1, 1),
		Specular:     0.5,
		Shininess:    32.0,
		Reflectivity: 0.0,
		Roughness:    0.0,
		IOR:          1.5,
		Type:         TypeLambertian,
	}
}

// NewLambertian creates a diffuse material with the given base color
func NewLambertian(color core.Vec3) Material {
	m := Default()
	m.Color = color
	return m
}

// NewMetal creates a reflective material with the given color and roughness
func NewMetal(color core.Vec3, roughness float64) Material {
	m := Default()
	m.Color = color
	m.Roughness = roughness
	m.Type = TypeMetal
	return m
}

// NewDielectric creates a transmissive material with the given index of refraction
func NewDielectric(ior float64) Material {
	m := Default()
	m.IOR = ior
	m.Roughness = 0.0
	m.Type = TypeDielectric
	return m
}

// IsSpecular reports whether the path tracer treats the material as perfectly
// specular. Specular hits skip direct-light sampling: a stochastic scatter ray
// has zero probability of hitting an analytic point or directional light.
func (m Material) IsSpecular() bool {
	switch m.Type {
	case TypeDielectric:
		return true
	case TypeMetal:
		return m.Roughness < 0.05
	default:
		return false
	}
}
