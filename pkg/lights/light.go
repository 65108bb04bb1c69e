package lights

import (
	"math"

	"github.com/tlange/go-interactive-raytracer/pkg/core"
)

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// Light is an analytic light source. Point lights use Position only,
// directional lights use Direction only.
type Light struct {
	Type      LightType
	Position  core.Vec3
	Direction core.Vec3
	Color     core.Vec3
	Intensity float64
}

// NewPointLight creates a point light at the given position
func NewPointLight(position, color core.Vec3, intensity float64) Light {
	return Light{
		Type:      LightTypePoint,
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

// NewDirectionalLight creates a directional light shining along direction
func NewDirectionalLight(direction, color core.Vec3, intensity float64) Light {
	return Light{
		Type:      LightTypeDirectional,
		Direction: direction,
		Color:     color,
		Intensity: intensity,
	}
}

// DirectionFrom returns the unit direction from the given point toward the
// light and the maximum distance an occluder may block it at. Directional
// lights are infinitely far away.
func (l Light) DirectionFrom(point core.Vec3) (core.Vec3, float64) {
	switch l.Type {
	case LightTypeDirectional:
		return l.Direction.Negate().Normalize(), math.Inf(1)
	default:
		toLight := l.Position.Subtract(point)
		return toLight.Normalize(), toLight.Length()
	}
}
