package holo

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawBox draws an axis-aligned box. The label reports an area for flat
// squares, a volume for cubes and the raw extents otherwise.
func (d *Drawer) DrawBox(b Box) {
	position := b.Position
	if b.Transform != nil {
		position = b.Transform.Position
	}
	alpha := d.alpha(b.Alpha, d.Config.VolumeAlpha)

	if b.ShowLabel {
		class := ClassifyBox(b.Size)
		anchor := position.Add(up(b.Size.Y() / 1.2))
		if class == BoxSquare {
			anchor = position.Add(up(d.Config.SquareLabelOffset))
		}
		d.label(anchor, BoxLabel(class, position, b.Size))
	}

	d.Host.DrawSolidCube(position, b.Size, b.Color.WithAlpha(alpha))
	d.Host.DrawWireCube(position, b.Size, b.Color.Opaque())
}

// DrawSphere draws a sphere. The volume pass gets the radius as given while
// the outline uses its magnitude.
func (d *Drawer) DrawSphere(s Sphere) {
	position := s.Position
	if s.Transform != nil {
		position = s.Transform.Position
	}
	alpha := d.alpha(s.Alpha, d.Config.VolumeAlpha)

	if s.ShowLabel {
		d.label(position.Add(up(s.Radius+d.Config.SphereLabelOffset)), SphereLabel(position, s.Radius))
	}

	d.Host.DrawSolidSphere(position, s.Radius, s.Color.WithAlpha(alpha))
	d.Host.DrawWireSphere(position, abs32(s.Radius), s.Color.Opaque())
}

// DrawMesh draws an arbitrary mesh as volume and outline.
func (d *Drawer) DrawMesh(m MeshShape) error {
	if m.Mesh == nil {
		return ErrNilMesh
	}
	position, rotation, scale := m.Position, orIdentity(m.Rotation), m.Scale
	if m.Transform != nil {
		position, rotation, scale = m.Transform.Position, m.Transform.rotation(), m.Transform.Scale
	}
	alpha := d.alpha(m.Alpha, d.Config.MeshAlpha)

	if m.ShowLabel {
		d.label(position.Add(up(d.Config.MeshLabelOffset)), MeshLabel(m.Mesh.VertexCount(), position, scale))
	}

	d.holoMesh(m.Mesh, position, rotation, scale, m.Color, alpha)
	return nil
}

// DrawCylinder draws the host's built-in cylinder scaled by Size. Nothing is
// drawn when the asset cannot be resolved.
func (d *Drawer) DrawCylinder(c Cylinder) error {
	mesh, err := d.Assets.BuiltinMesh(BuiltinCylinder)
	if err != nil {
		d.logger().Errorf("cylinder: %v", err)
		return fmt.Errorf("failed to draw cylinder: %w", err)
	}

	position, size := c.Position, c.Size
	if c.Transform != nil {
		position, size = c.Transform.Position, c.Transform.Scale
	}
	alpha := d.alpha(c.Alpha, d.Config.VolumeAlpha)

	if c.ShowLabel {
		d.label(position.Add(up(abs32(0.5+size.Y()))), PlacementLabel(position, size))
	}

	d.holoMesh(mesh, position, mgl32.QuatIdent(), size, c.Color, alpha)
	return nil
}
