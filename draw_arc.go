package holo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawArc draws a sweep of Angle degrees with a dotted radius to its start
// and a solid radius to its end. Angles that are not positive, NaN
// included, only produce a warning label.
func (d *Drawer) DrawArc(a Arc) {
	center, normal, from := a.Center, a.Up, a.From
	if a.Transform != nil {
		center, normal, from = a.Transform.Position, a.Transform.Up(), a.Transform.Forward()
	}
	anchor := center.Add(from.Mul(a.Radius))

	if !(a.Angle > 0) {
		d.logger().Warnf("arc at %s: angle %v is too small", FormatVec3(center), a.Angle)
		d.label(anchor, ArcTooSmallLabel(a.Angle))
		return
	}
	alpha := d.alpha(a.Alpha, d.Config.ArcAlpha)

	if a.ShowLabel {
		d.label(anchor, ArcLabel(a.Angle, a.Radius))
	}

	opaque := a.Color.Opaque()
	d.Host.DrawDottedLine(center, anchor, d.Config.DottedLineSpacing, opaque)
	d.Host.DrawLine(center, ArcEndPoint(center, a.Angle, a.Radius), opaque)

	d.Host.DrawSolidArc(center, normal, from, a.Angle, a.Radius, a.Color.WithAlpha(alpha))
	d.Host.DrawWireArc(center, normal, from, a.Angle, a.Radius, opaque)
}

// ArcEndPoint is the end of the closing radius, measured in the XZ plane
// from +Z towards +X. It ignores the arc's own axes.
func ArcEndPoint(center mgl32.Vec3, angle, radius float32) mgl32.Vec3 {
	rad := float64(mgl32.DegToRad(90 - angle))
	return center.Add(mgl32.Vec3{
		radius * float32(math.Cos(rad)),
		0,
		radius * float32(math.Sin(rad)),
	})
}

// DrawViewArc draws a field of view of Angle degrees split evenly around
// Forward. The valid range is (0, 360]; outside it only a warning label is
// drawn, and a NaN angle draws nothing.
func (d *Drawer) DrawViewArc(v ViewArc) {
	anchor := v.Center.Add(v.Forward.Mul(v.Radius))

	switch {
	case v.Angle > 0 && v.Angle < fullTurnLimit:
	case v.Angle >= fullTurnLimit:
		d.logger().Warnf("view arc at %s: angle %v is too big", FormatVec3(v.Center), v.Angle)
		d.label(anchor, ViewArcTooBigLabel(v.Angle))
		return
	case v.Angle <= 0:
		d.logger().Warnf("view arc at %s: angle %v is too small", FormatVec3(v.Center), v.Angle)
		d.label(anchor, ViewArcTooSmallLabel(v.Angle))
		return
	default:
		// NaN: neither too big nor too small, and nothing to draw.
		d.logger().Warnf("view arc at %s: angle is not a number", FormatVec3(v.Center))
		return
	}
	alpha := d.alpha(v.Alpha, d.Config.ArcAlpha)

	if v.ShowLabel {
		d.label(anchor, ViewArcLabel(v.Angle, v.Radius))
	}

	opaque := v.Color.Opaque()
	normal := ViewArcUp(v.Forward)
	half := v.Angle * 0.5

	// A full circle has no edges to mark.
	if v.Angle < 360 {
		left, right := ViewArcEdges(v.Center, v.Forward, v.Angle, v.Radius)
		d.Host.DrawLine(v.Center, left, opaque)
		d.Host.DrawLine(v.Center, right, opaque)
	}

	d.Host.DrawWireArc(v.Center, normal, v.Forward, half, v.Radius, opaque)
	d.Host.DrawWireArc(v.Center, normal, v.Forward, -half, v.Radius, opaque)

	fill := v.Color.WithAlpha(alpha)
	d.Host.DrawSolidArc(v.Center, normal, v.Forward, half, v.Radius, fill)
	d.Host.DrawSolidArc(v.Center, normal, v.Forward, -half, v.Radius, fill)
}

// ViewArcUp picks the sweep axis for a view arc: +Y when looking down +Z,
// +Z for every other forward.
func ViewArcUp(forward mgl32.Vec3) mgl32.Vec3 {
	if forward == AxisForward {
		return AxisUp
	}
	return AxisForward
}

// ViewArcEdges returns the endpoints of the two edge rays. Only forward
// along +Z (XZ plane) or +Y (XY plane) is supported; any other forward
// collapses both endpoints onto the center.
func ViewArcEdges(center, forward mgl32.Vec3, angle, radius float32) (mgl32.Vec3, mgl32.Vec3) {
	rad1 := float64(mgl32.DegToRad(-angle*0.5 + 90))
	rad2 := float64(mgl32.DegToRad(angle*0.5 + 90))
	c1, s1 := radius*float32(math.Cos(rad1)), radius*float32(math.Sin(rad1))
	c2, s2 := radius*float32(math.Cos(rad2)), radius*float32(math.Sin(rad2))

	switch forward {
	case AxisForward:
		return center.Add(mgl32.Vec3{c1, 0, s1}), center.Add(mgl32.Vec3{c2, 0, s2})
	case AxisUp:
		return center.Add(mgl32.Vec3{c1, s1, 0}), center.Add(mgl32.Vec3{c2, s2, 0})
	default:
		return center, center
	}
}
