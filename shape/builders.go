package shape

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pavanmanishd/go-arena"
)

// Plane builds a width x depth grid in the XZ plane, centred on the origin
// and facing +Y. Segment counts below 1 are raised to 1.
func Plane(a *arena.Arena, width, depth float32, segX, segZ int) Mesh {
	segX, segZ = max(segX, 1), max(segZ, 1)
	m := newMesh(a, (segX+1)*(segZ+1), 6*segX*segZ)

	up := mgl32.Vec3{0, 1, 0}
	v := 0
	for iz := 0; iz <= segZ; iz++ {
		tz := float32(iz) / float32(segZ)
		for ix := 0; ix <= segX; ix++ {
			tx := float32(ix) / float32(segX)
			m.Positions[v] = mgl32.Vec3{(tx - 0.5) * width, 0, (tz - 0.5) * depth}
			m.Normals[v] = up
			m.UVs[v] = mgl32.Vec2{tx, 1 - tz}
			v++
		}
	}

	i := 0
	row := uint32(segX + 1)
	for iz := 0; iz < segZ; iz++ {
		for ix := 0; ix < segX; ix++ {
			a0 := uint32(iz)*row + uint32(ix)
			b0, c0, d0 := a0+1, a0+row, a0+row+1
			copy(m.Indices[i:], []uint32{a0, c0, b0, b0, c0, d0})
			i += 6
		}
	}
	return m
}

// cubeFaces lists each face as normal, u and v with u x v == normal, so the
// corner order -u-v, +u-v, +u+v, -u+v is counter-clockwise from outside.
var cubeFaces = [6][3]mgl32.Vec3{
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
}

var quadCorners = [4]mgl32.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

// Cube builds an axis-aligned cube with edge length size centred on the
// origin. Faces do not share vertices so normals stay flat.
func Cube(a *arena.Arena, size float32) Mesh {
	m := newMesh(a, 24, 36)
	h := size / 2
	for f, face := range cubeFaces {
		n, u, v := face[0], face[1], face[2]
		base := f * 4
		for c, k := range quadCorners {
			m.Positions[base+c] = n.Add(u.Mul(k[0])).Add(v.Mul(k[1])).Mul(h)
			m.Normals[base+c] = n
			m.UVs[base+c] = mgl32.Vec2{(k[0] + 1) / 2, (k[1] + 1) / 2}
		}
		b := uint32(base)
		copy(m.Indices[f*6:], []uint32{b, b + 1, b + 2, b, b + 2, b + 3})
	}
	return m
}

// Sphere builds a UV sphere. widthSegments is raised to at least 3 and
// heightSegments to at least 2. The seam and pole vertices are duplicated so
// texture coordinates stay continuous; degenerate pole triangles are left
// out.
func Sphere(a *arena.Arena, radius float32, widthSegments, heightSegments int) Mesh {
	w, h := max(widthSegments, 3), max(heightSegments, 2)
	m := newMesh(a, (w+1)*(h+1), 6*w*(h-1))

	v := 0
	for y := 0; y <= h; y++ {
		tv := float64(y) / float64(h)
		theta := tv * math.Pi
		for x := 0; x <= w; x++ {
			tu := float64(x) / float64(w)
			phi := tu * 2 * math.Pi
			n := mgl32.Vec3{
				float32(math.Sin(theta) * math.Cos(phi)),
				float32(math.Cos(theta)),
				float32(-math.Sin(theta) * math.Sin(phi)),
			}
			m.Positions[v] = n.Mul(radius)
			m.Normals[v] = n
			m.UVs[v] = mgl32.Vec2{float32(tu), float32(1 - tv)}
			v++
		}
	}

	i := 0
	row := uint32(w + 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v1 := uint32(y)*row + uint32(x)
			v2, v3, v4 := v1+1, v1+row, v1+row+1
			if y != 0 {
				copy(m.Indices[i:], []uint32{v1, v3, v2})
				i += 3
			}
			if y != h-1 {
				copy(m.Indices[i:], []uint32{v2, v3, v4})
				i += 3
			}
		}
	}
	return m
}
