// Package fractal builds Sierpinski tetrahedron meshes by recursive
// subdivision.
//
// Output grows as a power of four: a build at depth d holds 4^d leaf
// tetrahedra, 4^(d+1) vertices and 4^(d+1) triangles. Vertices are never
// welded. The builder does not cap depth; callers are expected to keep
// it small (see MaxPracticalDepth).
package fractal

import (
	gomath "math"

	"github.com/Faultbox/fractalgen/pkg/math"
)

// Tetrahedron is four corner points. Vertex order is significant: it is
// preserved through subdivision and defines the emitted faces.
type Tetrahedron [4]math.Vec3

// Canonical returns the regular tetrahedron with unit edges used as the
// root of every build. The base lies in the XY plane with one corner at
// the origin and the apex above the base centroid.
func Canonical() Tetrahedron {
	return Tetrahedron{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0.5, Y: gomath.Sqrt(3) / 2, Z: 0},
		{X: 0.5, Y: gomath.Sqrt(3) / 6, Z: gomath.Sqrt(2) / gomath.Sqrt(3)},
	}
}

// Edges returns the six edge lengths in the order 01, 02, 03, 12, 13, 23.
func (t Tetrahedron) Edges() [6]float64 {
	return [6]float64{
		t[0].Distance(t[1]),
		t[0].Distance(t[2]),
		t[0].Distance(t[3]),
		t[1].Distance(t[2]),
		t[1].Distance(t[3]),
		t[2].Distance(t[3]),
	}
}

// Transform applies m to every corner.
func (t Tetrahedron) Transform(m math.Mat4) Tetrahedron {
	return Tetrahedron{
		m.TransformVec3(t[0]),
		m.TransformVec3(t[1]),
		m.TransformVec3(t[2]),
		m.TransformVec3(t[3]),
	}
}
