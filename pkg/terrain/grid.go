package terrain

import (
	"fmt"

	"github.com/Faultbox/fractalgen/pkg/math"
)

// Grid returns n*n points evenly spaced over [lo, hi] on both axes.
// Points are row-major with x varying fastest, so point (i, j) is at
// index j*n + i.
func Grid(n int, lo, hi float64) ([]math.Vec2, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrGridSize, n)
	}
	axis := linspace(n, lo, hi)
	points := make([]math.Vec2, 0, n*n)
	for j := range n {
		for i := range n {
			points = append(points, math.Vec2{X: axis[i], Y: axis[j]})
		}
	}
	return points, nil
}

func linspace(n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range n {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// GridTriangles triangulates the n*n grid from Grid with two triangles
// per cell, which is a Delaunay triangulation of the regular lattice.
// Triangles wind counter-clockwise seen from +Z.
func GridTriangles(n int) [][3]uint32 {
	if n < 2 {
		return nil
	}
	tris := make([][3]uint32, 0, 2*(n-1)*(n-1))
	for j := range n - 1 {
		for i := range n - 1 {
			a := uint32(j*n + i)
			b := a + 1
			c := a + uint32(n)
			d := c + 1
			tris = append(tris, [3]uint32{a, b, d}, [3]uint32{a, d, c})
		}
	}
	return tris
}
