package holo

import "github.com/go-gl/mathgl/mgl32"

// Mesh is an indexed triangle list. Meshes handed out by the procedural
// generators and the asset server are shared and must not be modified;
// use Clone for a private copy.
type Mesh struct {
	Name     string
	Vertices []mgl32.Vec3
	UV       []mgl32.Vec2
	Normals  []mgl32.Vec3
	Indices  []uint32
}

func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the corner positions of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c mgl32.Vec3) {
	return m.Vertices[m.Indices[i*3]], m.Vertices[m.Indices[i*3+1]], m.Vertices[m.Indices[i*3+2]]
}

func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Name:     m.Name,
		Vertices: append([]mgl32.Vec3(nil), m.Vertices...),
		UV:       append([]mgl32.Vec2(nil), m.UV...),
		Normals:  append([]mgl32.Vec3(nil), m.Normals...),
		Indices:  append([]uint32(nil), m.Indices...),
	}
}

// RecalculateNormals sets area-weighted vertex normals from the triangles.
// Vertices no triangle references get a zero normal.
func (m *Mesh) RecalculateNormals() {
	normals := make([]mgl32.Vec3, len(m.Vertices))
	for i := 0; i < m.TriangleCount(); i++ {
		i0, i1, i2 := m.Indices[i*3], m.Indices[i*3+1], m.Indices[i*3+2]
		a, b, c := m.Vertices[i0], m.Vertices[i1], m.Vertices[i2]
		// cross product length is twice the area, so larger faces weigh more
		n := b.Sub(a).Cross(c.Sub(a))
		normals[i0] = normals[i0].Add(n)
		normals[i1] = normals[i1].Add(n)
		normals[i2] = normals[i2].Add(n)
	}
	for i, n := range normals {
		if n.Len() > 0 {
			normals[i] = n.Normalize()
		}
	}
	m.Normals = normals
}
