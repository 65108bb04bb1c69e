package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Transform holds the position, orientation and scale of an object.
// Basis vectors follow the right-handed OpenGL convention: with an identity
// rotation, forward is -Z, right is +X and up is +Y.
type Transform struct {
	Position Vec3
	Rotation mgl64.Quat
	Scale    Vec3
}

// NewTransform creates an identity transform at the origin
func NewTransform() Transform {
	return Transform{
		Position: NewVec3(0, 0, 0),
		Rotation: mgl64.QuatIdent(),
		Scale:    NewVec3(1, 1, 1),
	}
}

// Forward returns the unit forward vector (-Z rotated by the orientation)
func (t Transform) Forward() Vec3 {
	return FromMgl(t.Rotation.Rotate(mgl64.Vec3{0, 0, -1}))
}

// Right returns the unit right vector (+X rotated by the orientation)
func (t Transform) Right() Vec3 {
	return FromMgl(t.Rotation.Rotate(mgl64.Vec3{1, 0, 0}))
}

// Up returns the unit up vector (+Y rotated by the orientation)
func (t Transform) Up() Vec3 {
	return FromMgl(t.Rotation.Rotate(mgl64.Vec3{0, 1, 0}))
}

// Mat4 returns the homogeneous rotation+translation matrix of the transform.
// Scale is not folded in; ray generation and the camera pose ignore it.
func (t Transform) Mat4() mgl64.Mat4 {
	translation := mgl64.Translate3D(t.Position.X, t.Position.Y, t.Position.Z)
	return translation.Mul4(t.Rotation.Mat4())
}

// RotationFromBasis builds the orientation quaternion whose rotation maps the
// canonical basis onto the given orthonormal right/up/forward vectors.
func RotationFromBasis(right, up, forward Vec3) mgl64.Quat {
	m := mgl64.Mat4FromCols(
		right.Mgl().Vec4(0),
		up.Mgl().Vec4(0),
		forward.Negate().Mgl().Vec4(0),
		mgl64.Vec4{0, 0, 0, 1},
	)
	return mgl64.Mat4ToQuat(m)
}

// Mgl converts a Vec3 to its mathgl representation
func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromMgl converts a mathgl vector to a Vec3
func FromMgl(v mgl64.Vec3) Vec3 {
	return NewVec3(v.X(), v.Y(), v.Z())
}
