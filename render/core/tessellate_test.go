package core

import (
	"testing"

	"github.com/gekko3d/holo"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tessellate(t *testing.T, draw func(d *holo.Drawer)) Batch {
	t.Helper()
	rec := holo.NewRecorder()
	draw(holo.NewDrawer(rec))
	var b Batch
	Tessellate(&b, rec.Commands(), DefaultTessellateOptions())
	return b
}

func TestTessellate_WireCube(t *testing.T) {
	var b Batch
	Tessellate(&b, []holo.Command{{Primitive: holo.PrimWireCube, Size: mgl32.Vec3{2, 2, 2}, Color: holo.Red}}, DefaultTessellateOptions())

	assert.Len(t, b.Lines, 24)
	assert.Empty(t, b.Triangles)
	for _, v := range b.Lines {
		for _, c := range v.Pos {
			assert.Equal(t, float32(1), mgl32.Abs(c))
		}
	}
}

func TestTessellate_Box(t *testing.T) {
	b := tessellate(t, func(d *holo.Drawer) {
		d.DrawBox(holo.Box{Size: mgl32.Vec3{1, 1, 1}, Color: holo.Green, ShowLabel: true})
	})

	assert.Len(t, b.Triangles, 36)
	assert.Len(t, b.Lines, 24)
	require.Len(t, b.Labels, 1)
	assert.Equal(t, float32(0.3), b.Triangles[0].Color[3])
	assert.Equal(t, float32(1), b.Lines[0].Color[3])
}

func TestTessellate_SolidArcQuarter(t *testing.T) {
	var b Batch
	Tessellate(&b, []holo.Command{{
		Primitive: holo.PrimSolidArc,
		Normal:    holo.AxisUp,
		From:      holo.AxisForward,
		Angle:     90,
		Radius:    2,
	}}, DefaultTessellateOptions())

	require.Len(t, b.Triangles, 8*3)

	// The sweep ends a quarter turn from +Z about +Y, i.e. on +X.
	last := b.Triangles[len(b.Triangles)-1].Pos
	assert.InDelta(t, 2, last[0], 1e-5)
	assert.InDelta(t, 0, last[2], 1e-5)
}

func TestTessellate_NegativeArcSweepsBack(t *testing.T) {
	var b Batch
	Tessellate(&b, []holo.Command{{
		Primitive: holo.PrimWireArc,
		Normal:    holo.AxisUp,
		From:      holo.AxisForward,
		Angle:     -90,
		Radius:    1,
	}}, DefaultTessellateOptions())

	require.Len(t, b.Lines, 16)
	last := b.Lines[len(b.Lines)-1].Pos
	assert.InDelta(t, -1, last[0], 1e-5)
}

func TestTessellate_DegenerateArc(t *testing.T) {
	var b Batch
	Tessellate(&b, []holo.Command{{Primitive: holo.PrimWireArc, From: holo.AxisForward, Angle: 90, Radius: 1}}, DefaultTessellateOptions())

	assert.Empty(t, b.Lines)
}

func TestTessellate_DottedLine(t *testing.T) {
	var b Batch
	Tessellate(&b, []holo.Command{{
		Primitive: holo.PrimDottedLine,
		Start:     mgl32.Vec3{0, 0, 0},
		End:       mgl32.Vec3{1, 0, 0},
		Spacing:   2,
	}}, TessellateOptions{Steps: 32, DashUnit: 0.125})

	// Dash length 0.25: dashes at 0, 0.5.
	require.Len(t, b.Lines, 4)
	assert.InDelta(t, 0.25, b.Lines[1].Pos[0], 1e-6)
	assert.InDelta(t, 0.5, b.Lines[2].Pos[0], 1e-6)
	assert.InDelta(t, 0.75, b.Lines[3].Pos[0], 1e-6)
}

func TestTessellate_Mesh(t *testing.T) {
	mesh := holo.DiamondMesh()
	var b Batch
	Tessellate(&b, []holo.Command{
		{Primitive: holo.PrimSolidMesh, Mesh: mesh, Center: mgl32.Vec3{0, 1, 0}, Rotation: mgl32.QuatIdent(), Size: mgl32.Vec3{2, 2, 2}},
		{Primitive: holo.PrimWireMesh, Mesh: mesh, Rotation: mgl32.QuatIdent(), Size: mgl32.Vec3{1, 1, 1}},
	}, DefaultTessellateOptions())

	assert.Len(t, b.Triangles, 24)
	assert.Len(t, b.Lines, 8*6)

	maxY := float32(-100)
	for _, v := range b.Triangles {
		if v.Pos[1] > maxY {
			maxY = v.Pos[1]
		}
	}
	assert.InDelta(t, 2, maxY, 1e-6)
}

func TestTessellate_WireSphere(t *testing.T) {
	var b Batch
	Tessellate(&b, []holo.Command{{Primitive: holo.PrimWireSphere, Radius: 3}}, DefaultTessellateOptions())

	assert.Len(t, b.Lines, 3*32*2)
	for _, v := range b.Lines {
		p := mgl32.Vec3{v.Pos[0], v.Pos[1], v.Pos[2]}
		assert.InDelta(t, 3, p.Len(), 1e-4)
	}
}

func TestTessellate_SolidSphere(t *testing.T) {
	var b Batch
	Tessellate(&b, []holo.Command{{Primitive: holo.PrimSolidSphere, Radius: 1}}, TessellateOptions{Steps: 8})

	// 4 stacks of 8 slices, pole stacks contribute one triangle per slice.
	assert.Len(t, b.Triangles, (8+8+16+16)*3)
}

func TestBatch_Reset(t *testing.T) {
	b := tessellate(t, func(d *holo.Drawer) {
		d.DrawViewArc(holo.ViewArc{Forward: holo.AxisForward, Angle: 90, Radius: 1, ShowLabel: true})
	})
	require.NotEmpty(t, b.Lines)

	b.Reset()
	assert.Empty(t, b.Lines)
	assert.Empty(t, b.Triangles)
	assert.Empty(t, b.Labels)
}
