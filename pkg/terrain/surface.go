package terrain

import (
	"fmt"

	"github.com/Faultbox/fractalgen/pkg/math"
)

// BuildSurface lifts the 2D points to 3D using heights as Z and attaches
// the given triangulation. Normals are area-weighted averages of the
// adjacent face normals.
func BuildSurface(points []math.Vec2, heights []float64, tris [][3]uint32) (*Mesh, error) {
	if len(points) != len(heights) {
		return nil, fmt.Errorf("%w: %d points, %d heights", ErrMismatch, len(points), len(heights))
	}

	positions := make([]math.Vec3, len(points))
	for i, p := range points {
		positions[i] = p.WithZ(heights[i])
	}

	normals := make([]math.Vec3, len(points))
	indices := make([]uint32, 0, 3*len(tris))
	n := uint32(len(points))
	for ti, tri := range tris {
		if tri[0] >= n || tri[1] >= n || tri[2] >= n {
			return nil, fmt.Errorf("%w: triangle %d %v with %d points", ErrIndexRange, ti, tri, n)
		}
		a, b, c := positions[tri[0]], positions[tri[1]], positions[tri[2]]
		// Unnormalised cross product weights by triangle area.
		face := b.Sub(a).Cross(c.Sub(a))
		for _, idx := range tri {
			normals[idx] = normals[idx].Add(face)
		}
		indices = append(indices, tri[0], tri[1], tri[2])
	}

	mesh := &Mesh{
		Vertices: make([]Vertex, len(points)),
		Indices:  indices,
		Bounds: Bounds{
			Min: [3]float32{1e10, 1e10, 1e10},
			Max: [3]float32{-1e10, -1e10, -1e10},
		},
	}
	for i, p := range positions {
		pos := p.Float32()
		mesh.Vertices[i] = Vertex{
			Position: pos,
			Normal:   surfaceNormal(normals[i]),
			Height:   float32(p.Z),
		}
		updateBounds(&mesh.Bounds, pos)
	}
	if len(points) == 0 {
		mesh.Bounds = Bounds{}
	}
	return mesh, nil
}

// surfaceNormal normalises an accumulated normal, defaulting to +Z for
// vertices that touch no triangle.
func surfaceNormal(sum math.Vec3) [3]float32 {
	if sum.Length() < 1e-12 {
		return [3]float32{0, 0, 1}
	}
	return sum.Normalize().Float32()
}

func updateBounds(b *Bounds, p [3]float32) {
	for k := range 3 {
		b.Min[k] = min(b.Min[k], p[k])
		b.Max[k] = max(b.Max[k], p[k])
	}
}
