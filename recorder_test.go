package holo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_Reset(t *testing.T) {
	rec := NewRecorder()
	rec.DrawLine(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, White)
	rec.DrawLabel(mgl32.Vec3{}, "hi")

	assert.Len(t, rec.Commands(), 2)
	assert.Equal(t, 1, rec.GeometryCount())
	assert.Len(t, rec.Labels(), 1)

	rec.Reset()
	assert.Empty(t, rec.Commands())
	assert.Equal(t, 0, rec.Count(PrimLine))
}

func TestPrimitive_String(t *testing.T) {
	assert.Equal(t, "SolidArc", PrimSolidArc.String())
	assert.Equal(t, "Label", PrimLabel.String())
	assert.Equal(t, "Unknown", Primitive(99).String())
}
