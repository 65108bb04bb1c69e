package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tlange/go-interactive-raytracer/pkg/core"
)

var (
	worldUp = core.NewVec3(0, 1, 0)

	// fallbackUp takes over when the view direction is parallel to worldUp
	// and the cross product would degenerate
	fallbackUp = core.NewVec3(0, 0, 1)
)

// Camera is a pinhole projection model with unit focal distance. The
// transform is owned and mutated by the caller between renders and treated
// as read-only during a render call.
type Camera struct {
	Transform   core.Transform
	Fov         float64 // Vertical field of view in degrees
	AspectRatio float64
}

// NewCamera creates a camera at position oriented toward target
func NewCamera(position, target core.Vec3, fov, aspectRatio float64) *Camera {
	camera := &Camera{
		Transform:   core.NewTransform(),
		Fov:         fov,
		AspectRatio: aspectRatio,
	}
	camera.Transform.Position = position
	camera.LookAt(target)
	return camera
}

// NewDefaultCamera creates the default interactive camera: slightly raised,
// pulled back, looking at the origin
func NewDefaultCamera() *Camera {
	return NewCamera(core.NewVec3(0, 2.5, 6), core.NewVec3(0, 0, 0), 45.0, 16.0/9.0)
}

// LookAt orients the camera toward target using a fixed world up axis
func (c *Camera) LookAt(target core.Vec3) {
	forward := target.Subtract(c.Transform.Position).Normalize()

	up := worldUp
	if math.Abs(forward.Dot(worldUp)) > 1.0-1e-6 {
		up = fallbackUp
	}

	right := forward.Cross(up).Normalize()
	up = right.Cross(forward)
	c.Transform.Rotation = core.RotationFromBasis(right, up, forward)
}

// GetRay maps normalized image coordinates u,v in [0,1] to a world-space
// ray. v=1 is the top of the image.
func (c *Camera) GetRay(u, v float64) core.Ray {
	theta := mgl64.DegToRad(c.Fov)
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := c.AspectRatio * viewportHeight

	origin := c.Transform.Position
	horizontal := c.Transform.Right().Multiply(viewportWidth)
	vertical := c.Transform.Up().Multiply(viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Add(c.Transform.Forward())

	direction := lowerLeftCorner.
		Add(horizontal.Multiply(u)).
		Add(vertical.Multiply(v)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}

// ViewMatrix returns the world-to-camera matrix for the external 3D debug
// view. Not used by the shading path.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	view := c.Transform.Mat4().Inv()
	var out mgl32.Mat4
	for i := 0; i < 16; i++ {
		out[i] = float32(view[i])
	}
	return out
}

// ProjectionMatrix returns a right-handed perspective matrix for the
// external 3D debug view
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(float32(c.Fov)), float32(c.AspectRatio), 0.1, 100.0)
}
