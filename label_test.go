package holo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestFormatVec3(t *testing.T) {
	assert.Equal(t, "(1.0, -2.5, 0.0)", FormatVec3(mgl32.Vec3{1, -2.5, 0}))
	assert.Equal(t, "(0.3, 10.0, 3.1)", FormatVec3(mgl32.Vec3{0.26, 10, 3.14159}))
}

func TestBoxLabel(t *testing.T) {
	pos := mgl32.Vec3{1, 2, 3}

	assert.Equal(t, "Pos: (1.0, 2.0, 3.0)\nSize: (2.0m^3)", BoxLabel(BoxCube, pos, mgl32.Vec3{2, 2, 2}))
	assert.Equal(t, "Pos: (1.0, 2.0, 3.0)\nSize: (2.0m^3)", BoxLabel(BoxCube, pos, mgl32.Vec3{-2, -2, -2}))
	assert.Equal(t, "Pos: (1.0, 2.0, 3.0)\nSize: (4.0m^2)", BoxLabel(BoxSquare, pos, mgl32.Vec3{4, 0, 4}))
	assert.Equal(t, "Pos: (1.0, 2.0, 3.0)\nSize: (1.5m^2)", BoxLabel(BoxSquare, pos, mgl32.Vec3{0, 1.5, 1.5}))
	assert.Equal(t, "Pos: (1.0, 2.0, 3.0)\nSize: (2.0m^2)", BoxLabel(BoxSquare, pos, mgl32.Vec3{-2, 0, -2}))
	assert.Equal(t, "Pos: (1.0, 2.0, 3.0)\nSize: (3.0m^2)", BoxLabel(BoxSquare, pos, mgl32.Vec3{0, -3, -3}))
	assert.Equal(t, "Pos: (1.0, 2.0, 3.0)\nSize: (1.0, 2.0, 3.0)", BoxLabel(BoxGeneral, pos, mgl32.Vec3{1, 2, 3}))
}

func TestArcTurns(t *testing.T) {
	turns, rest := ArcTurns(450)
	assert.Equal(t, 1, turns)
	assert.Equal(t, float32(90), rest)

	turns, rest = ArcTurns(720.5)
	assert.Equal(t, 2, turns)
	assert.InDelta(t, 0.5, rest, 1e-4)
}

func TestArcLabel(t *testing.T) {
	assert.Equal(t, "90°\nr = 2", ArcLabel(90, 2))
	assert.Equal(t, "360°\nr = 1.5", ArcLabel(360, 1.5))
	assert.Equal(t, "1x 90°\nr = 2", ArcLabel(450, 2))
}

func TestWarningLabels(t *testing.T) {
	assert.Equal(t, "The angle is too small (-5°)", ArcTooSmallLabel(-5))
	assert.Equal(t, "The angle is too small (0° / 360°)", ViewArcTooSmallLabel(0))
	assert.Equal(t, "The angle is too big (400° / 360°)", ViewArcTooBigLabel(400))
}

func TestMultiLinePointLabel(t *testing.T) {
	p := mgl32.Vec3{1, 0, 0}
	assert.Equal(t, "Path 1 (A)\n(1.0, 0.0, 0.0)", MultiLinePointLabel("Path", 0, "A", p))
	assert.Equal(t, "Path 3\n(1.0, 0.0, 0.0)", MultiLinePointLabel("Path", 2, "", p))
}
