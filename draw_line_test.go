package holo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMidpoint(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, Midpoint(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 0, 0}))
	assert.Equal(t, mgl32.Vec3{0, 1, -1}, Midpoint(mgl32.Vec3{-1, 2, 0}, mgl32.Vec3{1, 0, -2}))
}

func TestDrawLine(t *testing.T) {
	d, rec := newTestDrawer()

	d.DrawLine(Line{Start: mgl32.Vec3{0, 0, 0}, End: mgl32.Vec3{2, 0, 0}, Color: Red, Name: "Rope", ShowLabel: true})

	labels := rec.Labels()
	require.Len(t, labels, 3)
	assert.Equal(t, "Rope 1\n(0.0, 0.0, 0.0)", labels[0].Text)
	assert.Equal(t, "Rope 2\n(2.0, 0.0, 0.0)", labels[1].Text)
	assert.Equal(t, "(Middle Point)\n(1.0, 0.0, 0.0)", labels[2].Text)
	assert.InDelta(t, 0.8, labels[2].Center.Y(), 1e-6)

	assert.Equal(t, 1, rec.Count(PrimLine))
	assert.Equal(t, 3, rec.Count(PrimSolidMesh))
	assert.Equal(t, 3, rec.Count(PrimWireMesh))

	var markers []mgl32.Vec3
	for _, c := range rec.Commands() {
		if c.Primitive == PrimSolidMesh {
			markers = append(markers, c.Center)
			assert.Equal(t, mgl32.Vec3{0.3, 0.3, 0.3}, c.Size)
			assert.Equal(t, float32(0.5), c.Color.A())
		}
	}
	assert.Equal(t, []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}, markers)
}

func TestDrawLine_LabelNeedsName(t *testing.T) {
	d, rec := newTestDrawer()

	d.DrawLine(Line{End: mgl32.Vec3{1, 1, 1}, ShowLabel: true})

	assert.Empty(t, rec.Labels())
}

func TestDrawLine_Transforms(t *testing.T) {
	d, rec := newTestDrawer()
	a, b := NewTransform("a"), NewTransform("b")
	a.Position = mgl32.Vec3{0, 4, 0}

	d.DrawLine(Line{StartTransform: a, EndTransform: b})

	for _, c := range rec.Commands() {
		if c.Primitive == PrimLine {
			assert.Equal(t, a.Position, c.Start)
			assert.Equal(t, b.Position, c.End)
		}
	}
}

func TestDrawMultiLine_LineCount(t *testing.T) {
	points := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}}

	d, rec := newTestDrawer()
	require.NoError(t, d.DrawMultiLine(MultiLine{Points: points, Loop: true}))
	assert.Equal(t, 3, rec.Count(PrimLine))
	assert.Equal(t, 3, rec.Count(PrimSolidMesh))

	d, rec = newTestDrawer()
	require.NoError(t, d.DrawMultiLine(MultiLine{Points: points}))
	assert.Equal(t, 2, rec.Count(PrimLine))
}

func TestDrawMultiLine_Direction(t *testing.T) {
	d, rec := newTestDrawer()
	points := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}

	require.NoError(t, d.DrawMultiLine(MultiLine{Points: points, Loop: true}))

	var lines []Command
	for _, c := range rec.Commands() {
		if c.Primitive == PrimLine {
			lines = append(lines, c)
		}
	}
	require.Len(t, lines, 3)
	assert.Equal(t, points[1], lines[0].Start)
	assert.Equal(t, points[0], lines[0].End)
	assert.Equal(t, points[2], lines[1].Start)
	assert.Equal(t, points[1], lines[1].End)
	assert.Equal(t, points[0], lines[2].Start)
	assert.Equal(t, points[2], lines[2].End)
}

func TestDrawMultiLine_TransformNames(t *testing.T) {
	d, rec := newTestDrawer()
	a, b := NewTransform("Gate"), NewTransform("Tower")
	b.Position = mgl32.Vec3{0, 0, 3}

	require.NoError(t, d.DrawMultiLine(MultiLine{Transforms: []*Transform{a, b}, Name: "Patrol", ShowLabel: true}))

	labels := rec.Labels()
	require.Len(t, labels, 2)
	assert.Equal(t, "Patrol 1 (Gate)\n(0.0, 0.0, 0.0)", labels[0].Text)
	assert.Equal(t, "Patrol 2 (Tower)\n(0.0, 0.0, 3.0)", labels[1].Text)
}

func TestDrawMultiLine_PointsWithoutNames(t *testing.T) {
	d, rec := newTestDrawer()

	err := d.DrawMultiLine(MultiLine{Points: []mgl32.Vec3{{1, 2, 3}}, Name: "P", ShowLabel: true})
	assert.ErrorIs(t, err, ErrNameCount)
	assert.Contains(t, err.Error(), "0 names for 1 points")
	assert.Empty(t, rec.Commands())

	// Unlabelled points need no names.
	require.NoError(t, d.DrawMultiLine(MultiLine{Points: []mgl32.Vec3{{1, 2, 3}}, Name: "P"}))
	assert.Empty(t, rec.Labels())

	require.NoError(t, d.DrawMultiLine(MultiLine{Points: []mgl32.Vec3{{1, 2, 3}}, Names: []string{""}, Name: "P", ShowLabel: true}))
	labels := rec.Labels()
	require.Len(t, labels, 1)
	assert.Equal(t, "P 1\n(1.0, 2.0, 3.0)", labels[0].Text)
}

func TestDrawMultiLine_Errors(t *testing.T) {
	d, rec := newTestDrawer()

	assert.ErrorIs(t, d.DrawMultiLine(MultiLine{Loop: true}), ErrNoPoints)

	err := d.DrawMultiLine(MultiLine{
		Points:    []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}},
		Names:     []string{"only one"},
		Name:      "Path",
		ShowLabel: true,
	})
	assert.ErrorIs(t, err, ErrNameCount)
	assert.Contains(t, err.Error(), "1 names for 2 points")

	assert.Empty(t, rec.Commands())

	// Empty without a loop draws nothing and is not an error.
	assert.NoError(t, d.DrawMultiLine(MultiLine{}))
}
