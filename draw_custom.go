package holo

import "github.com/go-gl/mathgl/mgl32"

// DrawDiamond draws the octahedron. The diamond is always drawn with
// identity rotation; Diamond.Rotation and the transform's rotation are not
// applied.
func (d *Drawer) DrawDiamond(dm Diamond) {
	position, size := dm.Position, dm.Size
	if size == (mgl32.Vec3{}) {
		size = mgl32.Vec3{dm.SizeUniform, dm.SizeUniform, dm.SizeUniform}
	}
	if dm.Transform != nil {
		position, size = dm.Transform.Position, dm.Transform.Scale
	}
	alpha := d.alpha(dm.Alpha, d.Config.VolumeAlpha)

	if dm.ShowLabel {
		d.label(position.Add(up(abs32(size.Y()))), PlacementLabel(position, size))
	}

	// TODO: apply the rotation once the diamond's intended orientation
	// behaviour is confirmed; callers currently rely on it being upright.
	d.holoMesh(DiamondMesh(), position, mgl32.QuatIdent(), size, dm.Color, alpha)
}

// DrawHexPyramid draws the hexagonal pyramid: the capped solid topology as
// volume and the side faces as outline.
func (d *Drawer) DrawHexPyramid(h HexPyramidShape) {
	position, rotation, size := h.Position, orIdentity(h.Rotation), h.Size
	if h.Transform != nil {
		position, rotation, size = h.Transform.Position, h.Transform.rotation(), h.Transform.Scale
	}
	alpha := d.alpha(h.Alpha, d.Config.VolumeAlpha)

	if h.ShowLabel {
		d.label(position.Add(up(abs32(size.Y()))), PlacementLabel(position, size))
	}

	pyramid := HexPyramidMeshes()
	d.Host.DrawSolidMesh(pyramid.Solid, position, rotation, size, h.Color.WithAlpha(alpha))
	d.Host.DrawWireMesh(pyramid.Wire, position, rotation, size, h.Color.Opaque())
}
