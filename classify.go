package holo

import "github.com/go-gl/mathgl/mgl32"

type BoxClass int

const (
	BoxGeneral BoxClass = iota
	BoxSquare           // flat: one extent zero, the other two equal
	BoxCube             // all three extents equal and nonzero
)

func (c BoxClass) String() string {
	switch c {
	case BoxSquare:
		return "Square"
	case BoxCube:
		return "Cube"
	default:
		return "Box"
	}
}

// ClassifyBox compares the extents exactly; no tolerance is applied.
func ClassifyBox(size mgl32.Vec3) BoxClass {
	x, y, z := size.X(), size.Y(), size.Z()

	if (x == y && z == 0 && x != 0) ||
		(x == z && y == 0 && x != 0) ||
		(y == z && x == 0 && y != 0) {
		return BoxSquare
	}
	if x == y && x == z && x != 0 {
		return BoxCube
	}
	return BoxGeneral
}
