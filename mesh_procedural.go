package holo

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// HexPyramid bundles the two topologies of the hexagonal pyramid. Both
// share the same vertex table; Wire only carries the six side faces.
type HexPyramid struct {
	Solid *Mesh
	Wire  *Mesh
}

var (
	diamondOnce sync.Once
	diamondMesh *Mesh

	hexOnce    sync.Once
	hexPyramid HexPyramid

	cylinderOnce sync.Once
	cylinderMesh *Mesh
)

// DiamondMesh returns the shared octahedron used for the diamond shape and
// the line point markers.
func DiamondMesh() *Mesh {
	diamondOnce.Do(func() {
		diamondMesh = buildDiamondMesh()
	})
	return diamondMesh
}

func buildDiamondMesh() *Mesh {
	m := &Mesh{
		Name: "Diamond",
		Vertices: []mgl32.Vec3{
			{0, 0.5, 0},       // top
			{0, -0.5, 0},      // bottom
			{-0.25, 0, -0.25}, // corners
			{0.25, 0, -0.25},
			{-0.25, 0, 0.25},
			{0.25, 0, 0.25},
		},
		UV: []mgl32.Vec2{
			{0, 1}, {1, 1}, {0, 0}, {1, 0}, {0, 1}, {0, 1},
		},
		Indices: []uint32{
			3, 1, 2,
			2, 0, 3,
			5, 1, 3,
			3, 0, 5,
			4, 1, 5,
			5, 0, 4,
			4, 0, 2,
			2, 1, 4,
		},
	}
	m.RecalculateNormals()
	return m
}

// HexPyramidMeshes returns the shared hexagonal pyramid pair. Vertex 8 sits
// at the origin and no triangle references it.
func HexPyramidMeshes() HexPyramid {
	hexOnce.Do(func() {
		hexPyramid = buildHexPyramid()
	})
	return hexPyramid
}

func buildHexPyramid() HexPyramid {
	vertices := []mgl32.Vec3{
		{0, 0.5, 0}, // tip
		{-0.25, -0.5, 0.45},
		{0.25, -0.5, 0.45},
		{0.5, -0.5, 0},
		{0.25, -0.5, -0.45},
		{-0.25, -0.5, -0.45},
		{-0.5, -0.5, 0},
		{0, -0.5, 0}, // base center
		{0, 0, 0},
	}
	sides := []uint32{
		2, 0, 1,
		3, 0, 2,
		4, 0, 3,
		5, 0, 4,
		6, 0, 5,
		1, 0, 6,
	}
	base := []uint32{
		1, 7, 2,
		2, 7, 3,
		3, 7, 4,
		4, 7, 5,
		5, 7, 6,
		6, 7, 1,
	}

	solid := &Mesh{
		Name:     "HexPyramid",
		Vertices: append([]mgl32.Vec3(nil), vertices...),
		Indices:  append(append([]uint32(nil), sides...), base...),
	}
	solid.RecalculateNormals()

	wire := &Mesh{
		Name:     "HexPyramidWire",
		Vertices: append([]mgl32.Vec3(nil), vertices...),
		Indices:  append([]uint32(nil), sides...),
		Normals:  append([]mgl32.Vec3(nil), vertices...),
	}

	return HexPyramid{Solid: solid, Wire: wire}
}

const cylinderSegments = 20

// CylinderMesh returns the built-in cylinder: radius 0.5, spanning y in
// [-1, 1], capped at both ends.
func CylinderMesh() *Mesh {
	cylinderOnce.Do(func() {
		cylinderMesh = BuildCylinderMesh(cylinderSegments)
	})
	return cylinderMesh
}

// BuildCylinderMesh tessellates a capped cylinder with the given number of
// side segments (minimum 3).
func BuildCylinderMesh(segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	const radius, half = float32(0.5), float32(1)

	m := &Mesh{Name: "Cylinder"}
	// ring vertices: bottom ring [0,segments), top ring [segments,2*segments)
	for _, y := range []float32{-half, half} {
		for i := 0; i < segments; i++ {
			a := 2 * math.Pi * float64(i) / float64(segments)
			x := radius * float32(math.Cos(a))
			z := radius * float32(math.Sin(a))
			m.Vertices = append(m.Vertices, mgl32.Vec3{x, y, z})
			m.UV = append(m.UV, mgl32.Vec2{float32(i) / float32(segments), (y + half) / (2 * half)})
		}
	}
	bottomCenter := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, mgl32.Vec3{0, -half, 0})
	m.UV = append(m.UV, mgl32.Vec2{0.5, 0})
	topCenter := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, mgl32.Vec3{0, half, 0})
	m.UV = append(m.UV, mgl32.Vec2{0.5, 1})

	n := uint32(segments)
	for i := uint32(0); i < n; i++ {
		j := (i + 1) % n
		b0, b1 := i, j
		t0, t1 := i+n, j+n
		m.Indices = append(m.Indices,
			b0, t0, b1,
			b1, t0, t1,
			bottomCenter, b0, b1,
			topCenter, t1, t0,
		)
	}
	m.RecalculateNormals()
	return m
}
