package holo

import "github.com/go-gl/mathgl/mgl32"

type Primitive int

const (
	PrimWireCube Primitive = iota
	PrimSolidCube
	PrimWireSphere
	PrimSolidSphere
	PrimWireMesh
	PrimSolidMesh
	PrimWireArc
	PrimSolidArc
	PrimLine
	PrimDottedLine
	PrimLabel
)

var primitiveNames = [...]string{
	PrimWireCube:    "WireCube",
	PrimSolidCube:   "SolidCube",
	PrimWireSphere:  "WireSphere",
	PrimSolidSphere: "SolidSphere",
	PrimWireMesh:    "WireMesh",
	PrimSolidMesh:   "SolidMesh",
	PrimWireArc:     "WireArc",
	PrimSolidArc:    "SolidArc",
	PrimLine:        "Line",
	PrimDottedLine:  "DottedLine",
	PrimLabel:       "Label",
}

func (p Primitive) String() string {
	if p < 0 || int(p) >= len(primitiveNames) {
		return "Unknown"
	}
	return primitiveNames[p]
}

// IsGeometry reports whether p draws shapes rather than text.
func (p Primitive) IsGeometry() bool {
	return p != PrimLabel
}

// Command is one recorded Host call. Only the fields relevant to Primitive
// are set.
type Command struct {
	Primitive Primitive
	Color     Color

	// Cube, sphere, mesh: Center is the position. Size is the cube extents or
	// the mesh scale.
	Center   mgl32.Vec3
	Size     mgl32.Vec3
	Rotation mgl32.Quat
	Mesh     *Mesh

	// Sphere and arc radius.
	Radius float32

	// Arc sweep.
	Normal mgl32.Vec3
	From   mgl32.Vec3
	Angle  float32

	// Lines. Spacing is only set for dotted lines.
	Start   mgl32.Vec3
	End     mgl32.Vec3
	Spacing float32

	// Label text, anchored at Center.
	Text string
}

// Recorder is a Host that keeps the calls of one frame in order.
type Recorder struct {
	cmds []Command
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Commands() []Command {
	return r.cmds
}

// Reset drops the recorded commands, keeping the backing storage.
func (r *Recorder) Reset() {
	r.cmds = r.cmds[:0]
}

func (r *Recorder) Count(p Primitive) int {
	n := 0
	for _, c := range r.cmds {
		if c.Primitive == p {
			n++
		}
	}
	return n
}

// GeometryCount counts every non-label command.
func (r *Recorder) GeometryCount() int {
	n := 0
	for _, c := range r.cmds {
		if c.Primitive.IsGeometry() {
			n++
		}
	}
	return n
}

func (r *Recorder) Labels() []Command {
	var out []Command
	for _, c := range r.cmds {
		if c.Primitive == PrimLabel {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) add(c Command) {
	r.cmds = append(r.cmds, c)
}

func (r *Recorder) DrawWireCube(center, size mgl32.Vec3, color Color) {
	r.add(Command{Primitive: PrimWireCube, Center: center, Size: size, Rotation: mgl32.QuatIdent(), Color: color})
}

func (r *Recorder) DrawSolidCube(center, size mgl32.Vec3, color Color) {
	r.add(Command{Primitive: PrimSolidCube, Center: center, Size: size, Rotation: mgl32.QuatIdent(), Color: color})
}

func (r *Recorder) DrawWireSphere(center mgl32.Vec3, radius float32, color Color) {
	r.add(Command{Primitive: PrimWireSphere, Center: center, Radius: radius, Color: color})
}

func (r *Recorder) DrawSolidSphere(center mgl32.Vec3, radius float32, color Color) {
	r.add(Command{Primitive: PrimSolidSphere, Center: center, Radius: radius, Color: color})
}

func (r *Recorder) DrawWireMesh(mesh *Mesh, position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3, color Color) {
	r.add(Command{Primitive: PrimWireMesh, Mesh: mesh, Center: position, Rotation: rotation, Size: scale, Color: color})
}

func (r *Recorder) DrawSolidMesh(mesh *Mesh, position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3, color Color) {
	r.add(Command{Primitive: PrimSolidMesh, Mesh: mesh, Center: position, Rotation: rotation, Size: scale, Color: color})
}

func (r *Recorder) DrawWireArc(center, normal, from mgl32.Vec3, angle, radius float32, color Color) {
	r.add(Command{Primitive: PrimWireArc, Center: center, Normal: normal, From: from, Angle: angle, Radius: radius, Color: color})
}

func (r *Recorder) DrawSolidArc(center, normal, from mgl32.Vec3, angle, radius float32, color Color) {
	r.add(Command{Primitive: PrimSolidArc, Center: center, Normal: normal, From: from, Angle: angle, Radius: radius, Color: color})
}

func (r *Recorder) DrawLine(start, end mgl32.Vec3, color Color) {
	r.add(Command{Primitive: PrimLine, Start: start, End: end, Color: color})
}

func (r *Recorder) DrawDottedLine(start, end mgl32.Vec3, spacing float32, color Color) {
	r.add(Command{Primitive: PrimDottedLine, Start: start, End: end, Spacing: spacing, Color: color})
}

func (r *Recorder) DrawLabel(position mgl32.Vec3, text string) {
	r.add(Command{Primitive: PrimLabel, Center: position, Text: text})
}
