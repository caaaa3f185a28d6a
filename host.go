package holo

import "github.com/go-gl/mathgl/mgl32"

// Host is the immediate-mode drawing API the shapes are built from. Every
// call takes its color and placement explicitly; implementations must not
// rely on state left over from a previous call.
//
// Arc sweeps follow the AngleAxis rule: the from direction is rotated about
// normal by angle degrees, negative angles sweeping the other way.
type Host interface {
	DrawWireCube(center, size mgl32.Vec3, color Color)
	DrawSolidCube(center, size mgl32.Vec3, color Color)
	DrawWireSphere(center mgl32.Vec3, radius float32, color Color)
	DrawSolidSphere(center mgl32.Vec3, radius float32, color Color)
	DrawWireMesh(mesh *Mesh, position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3, color Color)
	DrawSolidMesh(mesh *Mesh, position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3, color Color)
	DrawWireArc(center, normal, from mgl32.Vec3, angle, radius float32, color Color)
	DrawSolidArc(center, normal, from mgl32.Vec3, angle, radius float32, color Color)
	DrawLine(start, end mgl32.Vec3, color Color)
	DrawDottedLine(start, end mgl32.Vec3, spacing float32, color Color)
	DrawLabel(position mgl32.Vec3, text string)
}
