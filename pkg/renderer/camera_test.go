package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/tlange/go-interactive-raytracer/pkg/core"
)

func TestCamera_GetRay_CenterLooksForward(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), 45.0, 1.0)

	ray := camera.GetRay(0.5, 0.5)

	if ray.Origin != camera.Transform.Position {
		t.Errorf("Expected ray origin %v, got %v", camera.Transform.Position, ray.Origin)
	}
	expected := core.NewVec3(0, 0, -1)
	if ray.Direction.Normalize().Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray direction %v, got %v", expected, ray.Direction.Normalize())
	}
}

func TestCamera_GetRay_FovSpansViewport(t *testing.T) {
	// With a 90 degree vertical fov and unit focal distance the viewport is
	// 2 units tall, so the top-center ray tilts up at 45 degrees
	camera := NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 90.0, 1.0)

	ray := camera.GetRay(0.5, 1.0)

	direction := ray.Direction.Normalize()
	expected := core.NewVec3(0, 1, -1).Normalize()
	if direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected top-center direction %v, got %v", expected, direction)
	}
}

func TestCamera_GetRay_HorizontalOrientation(t *testing.T) {
	// u=1 is the right edge of the image as seen by the camera
	camera := NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 90.0, 1.0)

	right := camera.GetRay(1.0, 0.5).Direction.Normalize()
	left := camera.GetRay(0.0, 0.5).Direction.Normalize()

	if right.X <= 0 {
		t.Errorf("Expected right-edge ray to point toward +x, got %v", right)
	}
	if left.X >= 0 {
		t.Errorf("Expected left-edge ray to point toward -x, got %v", left)
	}
}

func TestCamera_LookAt(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 45.0, 1.0)

	camera.LookAt(core.NewVec3(10, 0, 0))

	forward := camera.Transform.Forward()
	expected := core.NewVec3(1, 0, 0)
	if forward.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected forward %v after LookAt, got %v", expected, forward)
	}
	up := camera.Transform.Up()
	if up.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-9 {
		t.Errorf("Expected world-aligned up, got %v", up)
	}
}

func TestCamera_LookAt_StraightDownFallsBackToAlternateUp(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 5, 0), core.NewVec3(0, 0, -1), 45.0, 1.0)

	camera.LookAt(core.NewVec3(0, 0, 0))

	forward := camera.Transform.Forward()
	if forward.Subtract(core.NewVec3(0, -1, 0)).Length() > 1e-9 {
		t.Fatalf("Expected forward straight down, got %v", forward)
	}

	// The basis must stay orthonormal despite forward being parallel to the
	// usual world up axis
	right := camera.Transform.Right()
	up := camera.Transform.Up()
	for name, v := range map[string]core.Vec3{"right": right, "up": up} {
		if math.Abs(v.Length()-1.0) > 1e-9 {
			t.Errorf("Expected unit %s vector, got length %f", name, v.Length())
		}
	}
	if math.Abs(right.Dot(up)) > 1e-9 || math.Abs(right.Dot(forward)) > 1e-9 || math.Abs(up.Dot(forward)) > 1e-9 {
		t.Errorf("Expected orthogonal basis, got right=%v up=%v forward=%v", right, up, forward)
	}
}

func TestCamera_ViewMatrix_MovesCameraToOrigin(t *testing.T) {
	position := core.NewVec3(0, 2.5, 6)
	camera := NewCamera(position, core.NewVec3(0, 0, 0), 45.0, 16.0/9.0)

	view := camera.ViewMatrix()
	transformed := view.Mul4x1(mgl32.Vec4{float32(position.X), float32(position.Y), float32(position.Z), 1})

	for i := 0; i < 3; i++ {
		if math.Abs(float64(transformed[i])) > 1e-5 {
			t.Errorf("Expected camera position to map to the origin, got %v", transformed)
		}
	}
}

func TestCamera_ProjectionMatrix(t *testing.T) {
	camera := NewDefaultCamera()

	projection := camera.ProjectionMatrix()

	// Perspective matrices carry -1 at row 3, column 2
	if math.Abs(float64(projection.At(3, 2))+1.0) > 1e-6 {
		t.Errorf("Expected perspective w-coupling of -1, got %f", projection.At(3, 2))
	}
	expectedFocal := 1.0 / math.Tan(mglDegToRad(45.0)/2)
	if math.Abs(float64(projection.At(1, 1))-expectedFocal) > 1e-5 {
		t.Errorf("Expected y focal term %f, got %f", expectedFocal, projection.At(1, 1))
	}
}

func mglDegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}
