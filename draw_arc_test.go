package holo

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawArc_TooSmall(t *testing.T) {
	for _, angle := range []float32{0, -5, float32(math.NaN())} {
		d, rec := newTestDrawer()

		d.DrawArc(Arc{Center: mgl32.Vec3{}, Up: AxisUp, From: AxisForward, Angle: angle, Radius: 2, Color: Red, ShowLabel: true})

		assert.Equal(t, 0, rec.GeometryCount(), "angle %v", angle)
		labels := rec.Labels()
		require.Len(t, labels, 1, "angle %v", angle)
		assert.Equal(t, ArcTooSmallLabel(angle), labels[0].Text)
		assert.Equal(t, mgl32.Vec3{0, 0, 2}, labels[0].Center)
	}
}

func TestDrawArc_Geometry(t *testing.T) {
	d, rec := newTestDrawer()

	d.DrawArc(Arc{Center: mgl32.Vec3{1, 0, 0}, Up: AxisUp, From: AxisForward, Angle: 90, Radius: 2, Color: Blue})

	assert.Equal(t, []Primitive{PrimDottedLine, PrimLine, PrimSolidArc, PrimWireArc}, primitives(rec))
	cmds := rec.Commands()

	assert.Equal(t, mgl32.Vec3{1, 0, 2}, cmds[0].End)
	assert.Equal(t, float32(3), cmds[0].Spacing)

	assert.InDelta(t, 3, cmds[1].End.X(), 1e-5)
	assert.InDelta(t, 0, cmds[1].End.Z(), 1e-5)

	assert.Equal(t, float32(0.2), cmds[2].Color.A())
	assert.Equal(t, float32(1), cmds[3].Color.A())
	assert.Equal(t, float32(90), cmds[3].Angle)
}

func TestDrawArc_MultipleTurnsLabel(t *testing.T) {
	d, rec := newTestDrawer()

	d.DrawArc(Arc{Up: AxisUp, From: AxisForward, Angle: 450, Radius: 1, ShowLabel: true})

	labels := rec.Labels()
	require.Len(t, labels, 1)
	assert.Equal(t, "1x 90°\nr = 1", labels[0].Text)
}

func TestDrawArc_FromTransform(t *testing.T) {
	d, rec := newTestDrawer()
	tr := NewTransform("turret")
	tr.Position = mgl32.Vec3{0, 2, 0}
	tr.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), AxisRight)

	d.DrawArc(Arc{Transform: tr, Angle: 30, Radius: 1})

	wire := rec.Commands()[3]
	assertVec3InDelta(t, tr.Up(), wire.Normal, 1e-6)
	assertVec3InDelta(t, tr.Forward(), wire.From, 1e-6)
	assert.Equal(t, tr.Position, wire.Center)
}

func TestArcEndPoint(t *testing.T) {
	end := ArcEndPoint(mgl32.Vec3{}, 0, 1)
	assert.InDelta(t, 0, end.X(), 1e-6)
	assert.InDelta(t, 1, end.Z(), 1e-6)

	end = ArcEndPoint(mgl32.Vec3{}, 180, 2)
	assert.InDelta(t, 0, end.X(), 1e-5)
	assert.InDelta(t, -2, end.Z(), 1e-5)
}

func TestDrawViewArc_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		angle float32
		text  string
	}{
		{name: "Too big", angle: 400, text: "The angle is too big (400° / 360°)"},
		{name: "Just over", angle: 360.02, text: "The angle is too big (360.02° / 360°)"},
		{name: "Zero", angle: 0, text: "The angle is too small (0° / 360°)"},
		{name: "Negative", angle: -10, text: "The angle is too small (-10° / 360°)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newTestDrawer()

			d.DrawViewArc(ViewArc{Forward: AxisForward, Angle: tt.angle, Radius: 1})

			assert.Equal(t, 0, rec.GeometryCount())
			labels := rec.Labels()
			require.Len(t, labels, 1)
			assert.Equal(t, tt.text, labels[0].Text)
		})
	}
}

func TestDrawViewArc_NaNDrawsNothing(t *testing.T) {
	d, rec := newTestDrawer()

	d.DrawViewArc(ViewArc{Forward: AxisForward, Angle: float32(math.NaN()), Radius: 1, ShowLabel: true})

	assert.Empty(t, rec.Commands())
}

func TestDrawViewArc_FullCircleHasNoEdges(t *testing.T) {
	d, rec := newTestDrawer()

	d.DrawViewArc(ViewArc{Forward: AxisForward, Angle: 360, Radius: 1})

	assert.Equal(t, 2, rec.Count(PrimWireArc))
	assert.Equal(t, 2, rec.Count(PrimSolidArc))
	assert.Equal(t, 0, rec.Count(PrimLine))
	assert.Empty(t, rec.Labels())
}

func TestDrawViewArc_Cone(t *testing.T) {
	d, rec := newTestDrawer()

	d.DrawViewArc(ViewArc{Forward: AxisForward, Angle: 90, Radius: 2, Color: Green, ShowLabel: true})

	assert.Equal(t, []Primitive{
		PrimLabel,
		PrimLine, PrimLine,
		PrimWireArc, PrimWireArc,
		PrimSolidArc, PrimSolidArc,
	}, primitives(rec))

	cmds := rec.Commands()
	assert.Equal(t, "90°\nr = 2", cmds[0].Text)
	assert.Equal(t, AxisUp, cmds[3].Normal)
	assert.Equal(t, float32(45), cmds[3].Angle)
	assert.Equal(t, float32(-45), cmds[4].Angle)

	// Both edges lie on the radius, mirrored around the forward axis.
	left, right := cmds[1].End, cmds[2].End
	assert.InDelta(t, 2, left.Len(), 1e-5)
	assert.InDelta(t, 2, right.Len(), 1e-5)
	assert.InDelta(t, left.X(), -right.X(), 1e-5)
	assert.InDelta(t, left.Z(), right.Z(), 1e-5)
}

func TestViewArcUp(t *testing.T) {
	assert.Equal(t, AxisUp, ViewArcUp(AxisForward))
	assert.Equal(t, AxisForward, ViewArcUp(AxisUp))
	assert.Equal(t, AxisForward, ViewArcUp(AxisRight))
}

func TestViewArcEdges_Planes(t *testing.T) {
	_, right := ViewArcEdges(mgl32.Vec3{}, AxisUp, 90, 1)
	assert.InDelta(t, 0, right.Z(), 1e-6)
	assert.Greater(t, right.Y(), float32(0))

	l, r := ViewArcEdges(mgl32.Vec3{1, 1, 1}, AxisRight, 90, 1)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, l)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, r)
}
