// Package shape builds procedural meshes into an arena. Every slice of a
// Mesh points into the arena it was built from, so a mesh is valid until the
// arena is rewound past it:
//
//	mark := a.Mark()
//	m := shape.Sphere(a, 1, 32, 16)
//	upload(shape.Interleave(a, m), m.Indices)
//	a.Rewind(mark)
package shape

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pavanmanishd/go-arena"
)

// Mesh is an indexed triangle list.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// FloatsPerVertex is the stride of Interleave in float32s.
const FloatsPerVertex = 8

func (m Mesh) VertexCount() int   { return len(m.Positions) }
func (m Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// newMesh allocates vertex and index storage for a mesh from a.
func newMesh(a *arena.Arena, vertices, indices int) Mesh {
	return Mesh{
		Positions: arena.AllocSlice[mgl32.Vec3](a, vertices),
		Normals:   arena.AllocSlice[mgl32.Vec3](a, vertices),
		UVs:       arena.AllocSlice[mgl32.Vec2](a, vertices),
		Indices:   arena.AllocSlice[uint32](a, indices),
	}
}

// Interleave packs position, normal and uv per vertex into one buffer
// allocated from a, ready for a single vertex buffer upload.
func Interleave(a *arena.Arena, m Mesh) []float32 {
	out := arena.AllocSlice[float32](a, FloatsPerVertex*len(m.Positions))
	for i, p := range m.Positions {
		v := out[i*FloatsPerVertex : (i+1)*FloatsPerVertex]
		n, uv := m.Normals[i], m.UVs[i]
		v[0], v[1], v[2] = p[0], p[1], p[2]
		v[3], v[4], v[5] = n[0], n[1], n[2]
		v[6], v[7] = uv[0], uv[1]
	}
	return out
}

// Bounds returns the axis-aligned box enclosing every position.
func Bounds(m Mesh) (lo, hi mgl32.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	lo, hi = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], p[i])
			hi[i] = max(hi[i], p[i])
		}
	}
	return lo, hi
}
