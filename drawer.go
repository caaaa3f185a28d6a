package holo

import "github.com/go-gl/mathgl/mgl32"

// Drawer maps shape descriptors to Host primitive calls. It keeps no state
// between calls; every Draw* method is a self-contained command sequence
// for the current frame and must be called from the thread that drives the
// host's redraw.
type Drawer struct {
	Host   Host
	Assets Resources
	Log    Logger
	Config Config
}

// NewDrawer returns a drawer over host with a fresh AssetServer, a no-op
// logger and DefaultConfig.
func NewDrawer(host Host) *Drawer {
	if host == nil {
		panic("holo: nil Host")
	}
	return &Drawer{
		Host:   host,
		Assets: NewAssetServer(),
		Log:    NewNopLogger(),
		Config: DefaultConfig(),
	}
}

func (d *Drawer) logger() Logger {
	if d.Log == nil {
		return NewNopLogger()
	}
	return d.Log
}

// alpha resolves an optional alpha against a default and clamps it to [0,1].
func (d *Drawer) alpha(a *float32, def float32) float32 {
	v := def
	if a != nil {
		v = *a
	}
	if v < 0 || v > 1 {
		clamped := mgl32.Clamp(v, 0, 1)
		d.logger().Debugf("alpha %v out of range, using %v", v, clamped)
		v = clamped
	}
	return v
}

// label issues a label draw, used for both info text and warnings.
func (d *Drawer) label(position mgl32.Vec3, text string) {
	d.Host.DrawLabel(position, text)
}

// holoMesh draws the translucent volume followed by the opaque outline.
func (d *Drawer) holoMesh(mesh *Mesh, position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3, color Color, alpha float32) {
	d.Host.DrawSolidMesh(mesh, position, rotation, scale, color.WithAlpha(alpha))
	d.Host.DrawWireMesh(mesh, position, rotation, scale, color.Opaque())
}

func orIdentity(q mgl32.Quat) mgl32.Quat {
	if q.W == 0 && q.V.Len() == 0 {
		return mgl32.QuatIdent()
	}
	return q
}

func up(y float32) mgl32.Vec3 {
	return mgl32.Vec3{0, y, 0}
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
