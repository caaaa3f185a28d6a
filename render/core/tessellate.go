package core

import (
	"math"

	"github.com/gekko3d/holo"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex matches the WGSL gizmo vertex input.
type Vertex struct {
	Pos   [3]float32
	Color [4]float32
}

// LabelItem is a label still anchored in world space.
type LabelItem struct {
	World mgl32.Vec3
	Text  string
}

// Batch is one frame of gizmo geometry: a line list for the outline pass,
// a triangle list for the volume pass and the labels.
type Batch struct {
	Lines     []Vertex
	Triangles []Vertex
	Labels    []LabelItem
}

func (b *Batch) Reset() {
	b.Lines = b.Lines[:0]
	b.Triangles = b.Triangles[:0]
	b.Labels = b.Labels[:0]
}

type TessellateOptions struct {
	// Segments used for a full turn of a circle or arc.
	Steps int
	// World length of one unit of dotted line spacing.
	DashUnit float32
}

func DefaultTessellateOptions() TessellateOptions {
	return TessellateOptions{Steps: 32, DashUnit: 0.05}
}

// Tessellate appends the geometry of cmds to b.
func Tessellate(b *Batch, cmds []holo.Command, opts TessellateOptions) {
	if opts.Steps < 3 {
		opts.Steps = 3
	}
	for _, c := range cmds {
		switch c.Primitive {
		case holo.PrimWireCube:
			b.wireCube(c.Center, c.Size, c.Color)
		case holo.PrimSolidCube:
			b.solidCube(c.Center, c.Size, c.Color)
		case holo.PrimWireSphere:
			b.wireSphere(c.Center, c.Radius, c.Color, opts.Steps)
		case holo.PrimSolidSphere:
			b.solidSphere(c.Center, c.Radius, c.Color, opts.Steps)
		case holo.PrimWireMesh:
			b.wireMesh(c.Mesh, c.Center, c.Rotation, c.Size, c.Color)
		case holo.PrimSolidMesh:
			b.solidMesh(c.Mesh, c.Center, c.Rotation, c.Size, c.Color)
		case holo.PrimWireArc:
			b.wireArc(c, opts.Steps)
		case holo.PrimSolidArc:
			b.solidArc(c, opts.Steps)
		case holo.PrimLine:
			b.line(c.Start, c.End, c.Color)
		case holo.PrimDottedLine:
			b.dottedLine(c.Start, c.End, c.Spacing*opts.DashUnit, c.Color)
		case holo.PrimLabel:
			b.Labels = append(b.Labels, LabelItem{World: c.Center, Text: c.Text})
		}
	}
}

func vertex(p mgl32.Vec3, color holo.Color) Vertex {
	return Vertex{Pos: [3]float32{p.X(), p.Y(), p.Z()}, Color: color}
}

func (b *Batch) line(p0, p1 mgl32.Vec3, color holo.Color) {
	b.Lines = append(b.Lines, vertex(p0, color), vertex(p1, color))
}

func (b *Batch) triangle(p0, p1, p2 mgl32.Vec3, color holo.Color) {
	b.Triangles = append(b.Triangles, vertex(p0, color), vertex(p1, color), vertex(p2, color))
}

// Unit cube corners, -0.5 to 0.5.
var cubeCorners = [8]mgl32.Vec3{
	{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5},
	{-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // sides
}

var cubeFaces = [12][3]int{
	{0, 2, 1}, {0, 3, 2}, // bottom
	{4, 5, 6}, {4, 6, 7}, // top
	{0, 1, 5}, {0, 5, 4},
	{1, 2, 6}, {1, 6, 5},
	{2, 3, 7}, {2, 7, 6},
	{3, 0, 4}, {3, 4, 7},
}

func cubeCorner(i int, center, size mgl32.Vec3) mgl32.Vec3 {
	c := cubeCorners[i]
	return center.Add(mgl32.Vec3{c.X() * size.X(), c.Y() * size.Y(), c.Z() * size.Z()})
}

func (b *Batch) wireCube(center, size mgl32.Vec3, color holo.Color) {
	for _, e := range cubeEdges {
		b.line(cubeCorner(e[0], center, size), cubeCorner(e[1], center, size), color)
	}
}

func (b *Batch) solidCube(center, size mgl32.Vec3, color holo.Color) {
	for _, f := range cubeFaces {
		b.triangle(cubeCorner(f[0], center, size), cubeCorner(f[1], center, size), cubeCorner(f[2], center, size), color)
	}
}

func circlePoint(a float64) (float32, float32) {
	return float32(math.Cos(a)), float32(math.Sin(a))
}

// wireSphere draws the three axis-aligned great circles.
func (b *Batch) wireSphere(center mgl32.Vec3, radius float32, color holo.Color, steps int) {
	angleStep := 2.0 * math.Pi / float64(steps)
	for i := 0; i < steps; i++ {
		c1, s1 := circlePoint(float64(i) * angleStep)
		c2, s2 := circlePoint(float64(i+1) * angleStep)
		b.line(center.Add(mgl32.Vec3{c1, s1, 0}.Mul(radius)), center.Add(mgl32.Vec3{c2, s2, 0}.Mul(radius)), color)
		b.line(center.Add(mgl32.Vec3{c1, 0, s1}.Mul(radius)), center.Add(mgl32.Vec3{c2, 0, s2}.Mul(radius)), color)
		b.line(center.Add(mgl32.Vec3{0, c1, s1}.Mul(radius)), center.Add(mgl32.Vec3{0, c2, s2}.Mul(radius)), color)
	}
}

// solidSphere is a UV sphere with steps slices and steps/2 stacks.
func (b *Batch) solidSphere(center mgl32.Vec3, radius float32, color holo.Color, steps int) {
	stacks := steps / 2
	point := func(stack, slice int) mgl32.Vec3 {
		phi := math.Pi * float64(stack) / float64(stacks)
		theta := 2 * math.Pi * float64(slice) / float64(steps)
		sp := float32(math.Sin(phi))
		p := mgl32.Vec3{sp * float32(math.Cos(theta)), float32(math.Cos(phi)), sp * float32(math.Sin(theta))}
		return center.Add(p.Mul(radius))
	}
	for i := 0; i < stacks; i++ {
		for j := 0; j < steps; j++ {
			p00, p01 := point(i, j), point(i, j+1)
			p10, p11 := point(i+1, j), point(i+1, j+1)
			if i > 0 {
				b.triangle(p00, p01, p10, color)
			}
			if i < stacks-1 {
				b.triangle(p01, p11, p10, color)
			}
		}
	}
}

func meshPoint(v, position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) mgl32.Vec3 {
	scaled := mgl32.Vec3{v.X() * scale.X(), v.Y() * scale.Y(), v.Z() * scale.Z()}
	return position.Add(rotation.Rotate(scaled))
}

func (b *Batch) wireMesh(mesh *holo.Mesh, position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3, color holo.Color) {
	if mesh == nil {
		return
	}
	for i := 0; i < mesh.TriangleCount(); i++ {
		v0, v1, v2 := mesh.Triangle(i)
		p0 := meshPoint(v0, position, rotation, scale)
		p1 := meshPoint(v1, position, rotation, scale)
		p2 := meshPoint(v2, position, rotation, scale)
		b.line(p0, p1, color)
		b.line(p1, p2, color)
		b.line(p2, p0, color)
	}
}

func (b *Batch) solidMesh(mesh *holo.Mesh, position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3, color holo.Color) {
	if mesh == nil {
		return
	}
	for i := 0; i < mesh.TriangleCount(); i++ {
		v0, v1, v2 := mesh.Triangle(i)
		b.triangle(
			meshPoint(v0, position, rotation, scale),
			meshPoint(v1, position, rotation, scale),
			meshPoint(v2, position, rotation, scale),
			color,
		)
	}
}

// arcPoints returns segments+1 points along the sweep of c: the from
// direction rotated about the normal. Degenerate axes yield nothing.
func arcPoints(c holo.Command, steps int) []mgl32.Vec3 {
	if c.Normal.Len() == 0 || c.From.Len() == 0 || c.Angle == 0 {
		return nil
	}
	normal := c.Normal.Normalize()
	from := c.From.Normalize().Mul(c.Radius)

	segments := int(math.Ceil(math.Abs(float64(c.Angle)) / 360 * float64(steps)))
	if segments < 1 {
		segments = 1
	}
	points := make([]mgl32.Vec3, segments+1)
	for i := 0; i <= segments; i++ {
		a := mgl32.DegToRad(c.Angle * float32(i) / float32(segments))
		points[i] = c.Center.Add(mgl32.QuatRotate(a, normal).Rotate(from))
	}
	return points
}

func (b *Batch) wireArc(c holo.Command, steps int) {
	points := arcPoints(c, steps)
	for i := 0; i+1 < len(points); i++ {
		b.line(points[i], points[i+1], c.Color)
	}
}

func (b *Batch) solidArc(c holo.Command, steps int) {
	points := arcPoints(c, steps)
	for i := 0; i+1 < len(points); i++ {
		b.triangle(c.Center, points[i], points[i+1], c.Color)
	}
}

// dottedLine alternates dashes and gaps of length dash, starting with a
// dash. A non-positive dash draws a solid line.
func (b *Batch) dottedLine(p0, p1 mgl32.Vec3, dash float32, color holo.Color) {
	diff := p1.Sub(p0)
	length := diff.Len()
	if length == 0 {
		return
	}
	if dash <= 0 {
		b.line(p0, p1, color)
		return
	}
	dir := diff.Mul(1 / length)
	for t := float32(0); t < length; t += 2 * dash {
		end := t + dash
		if end > length {
			end = length
		}
		b.line(p0.Add(dir.Mul(t)), p0.Add(dir.Mul(end)), color)
	}
}
