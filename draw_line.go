package holo

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Midpoint is computed as end + (start-end)/2.
func Midpoint(start, end mgl32.Vec3) mgl32.Vec3 {
	return start.Sub(end).Mul(0.5).Add(end)
}

// DrawLine draws a segment and marks its start, middle and end with small
// diamonds.
func (d *Drawer) DrawLine(l Line) {
	start, end := l.Start, l.End
	if l.StartTransform != nil {
		start = l.StartTransform.Position
	}
	if l.EndTransform != nil {
		end = l.EndTransform.Position
	}
	middle := Midpoint(start, end)

	if l.Name != "" && l.ShowLabel {
		offset := up(d.Config.PointLabelOffset)
		d.label(start.Add(offset), LinePointLabel(l.Name, 1, start))
		d.label(end.Add(offset), LinePointLabel(l.Name, 2, end))
		d.label(middle.Add(offset), MidpointLabel(middle))
	}

	d.Host.DrawLine(start, end, l.Color)
	d.marker(start, l.Color)
	d.marker(middle, l.Color)
	d.marker(end, l.Color)
}

// DrawMultiLine draws a polyline through the points, marking each one. It
// fails without drawing anything when a loop is requested over no points,
// or when labels are requested with fewer names than points. Transforms
// supply their own names when Names is nil.
func (d *Drawer) DrawMultiLine(m MultiLine) error {
	points, names := m.Points, m.Names
	if m.Transforms != nil {
		points = make([]mgl32.Vec3, len(m.Transforms))
		transformNames := make([]string, len(m.Transforms))
		for i, t := range m.Transforms {
			points[i] = t.Position
			transformNames[i] = t.Name
		}
		if names == nil {
			names = transformNames
		}
	}

	labels := m.Name != "" && m.ShowLabel
	if m.Loop && len(points) == 0 {
		return fmt.Errorf("looping multi-line: %w", ErrNoPoints)
	}
	if labels && len(names) < len(points) {
		return fmt.Errorf("multi-line %q has %d names for %d points: %w", m.Name, len(names), len(points), ErrNameCount)
	}

	for i, p := range points {
		d.marker(p, m.Color)

		if labels {
			d.label(p.Add(up(d.Config.PointLabelOffset)), MultiLinePointLabel(m.Name, i, names[i], p))
		}

		if i+1 < len(points) {
			d.Host.DrawLine(points[i+1], p, m.Color)
		}
	}

	if m.Loop {
		d.Host.DrawLine(points[0], points[len(points)-1], m.Color)
	}
	return nil
}

func (d *Drawer) marker(p mgl32.Vec3, color Color) {
	scale := d.Config.MarkerScale
	d.holoMesh(DiamondMesh(), p, mgl32.QuatIdent(), mgl32.Vec3{scale, scale, scale}, color, d.Config.MarkerAlpha)
}
