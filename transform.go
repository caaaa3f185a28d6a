package holo

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is the scene-object placement the convenience forms of the
// Draw* methods read from.
type Transform struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransform(name string) *Transform {
	return &Transform{
		Name:     name,
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

var (
	AxisRight   = mgl32.Vec3{1, 0, 0}
	AxisUp      = mgl32.Vec3{0, 1, 0}
	AxisForward = mgl32.Vec3{0, 0, 1}
)

// Up is the transform's local +Y in world space.
func (t *Transform) Up() mgl32.Vec3 {
	return t.rotation().Rotate(AxisUp)
}

// Forward is the transform's local +Z in world space.
func (t *Transform) Forward() mgl32.Vec3 {
	return t.rotation().Rotate(AxisForward)
}

func (t *Transform) ObjectToWorld() mgl32.Mat4 {
	// M = T * R * S
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := t.rotation().Mat4()
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(rotate).Mul4(scale)
}

// A zero-value Transform has a zero quaternion; treat it as identity.
func (t *Transform) rotation() mgl32.Quat {
	if t.Rotation.W == 0 && t.Rotation.V.Len() == 0 {
		return mgl32.QuatIdent()
	}
	return t.Rotation
}

// TRS builds a model matrix from explicit parts.
func TRS(position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) mgl32.Mat4 {
	t := Transform{Position: position, Rotation: rotation, Scale: scale}
	return t.ObjectToWorld()
}
