// Package ifs generates point clouds from affine iterated function
// systems using the chaos game.
package ifs

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/fractalgen/pkg/math"
)

// ErrNegativeCount is returned when fewer than zero points are requested.
var ErrNegativeCount = errors.New("ifs: negative point count")

// ErrNoMaps is returned for a system without maps.
var ErrNoMaps = errors.New("ifs: system has no maps")

// Map is one affine transform p' = Linear*p + Offset, picked with
// probability Weight.
type Map struct {
	Linear mgl64.Mat2
	Offset mgl64.Vec2
	Weight float64
}

// Apply transforms p.
func (m Map) Apply(p mgl64.Vec2) mgl64.Vec2 {
	return m.Linear.Mul2x1(p).Add(m.Offset)
}

// System is a set of maps whose weights are used as cumulative
// probabilities in order.
type System []Map

// Barnsley returns the classic Barnsley fern: stem, successively
// smaller leaflets, and the largest left and right leaflets.
func Barnsley() System {
	// mgl64.Mat2 is column-major: {a, c, b, d} for [[a b] [c d]].
	return System{
		{Linear: mgl64.Mat2{0, 0, 0, 0.16}, Weight: 0.01},
		{Linear: mgl64.Mat2{0.85, -0.04, 0.04, 0.85}, Offset: mgl64.Vec2{0, 1.6}, Weight: 0.85},
		{Linear: mgl64.Mat2{0.2, 0.23, -0.26, 0.22}, Offset: mgl64.Vec2{0, 1.6}, Weight: 0.07},
		{Linear: mgl64.Mat2{-0.15, 0.26, 0.28, 0.24}, Offset: mgl64.Vec2{0, 0.44}, Weight: 0.07},
	}
}

// pick returns the map selected by f in [0, 1). Rounding slack in the
// weights falls through to the last map.
func (s System) pick(f float64) Map {
	acc := 0.0
	for _, m := range s[:len(s)-1] {
		acc += m.Weight
		if f < acc {
			return m
		}
	}
	return s[len(s)-1]
}

// Generate runs the chaos game from the origin for n steps and returns
// every visited point. The same rng state yields the same points.
func (s System) Generate(n int, rng *rand.Rand) ([]math.Vec2, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if len(s) == 0 {
		return nil, ErrNoMaps
	}

	points := make([]math.Vec2, 0, n)
	p := mgl64.Vec2{0, 0}
	for range n {
		p = s.pick(rng.Float64()).Apply(p)
		points = append(points, math.Vec2{X: p.X(), Y: p.Y()})
	}
	return points, nil
}

// Fern is Barnsley().Generate.
func Fern(n int, rng *rand.Rand) ([]math.Vec2, error) {
	return Barnsley().Generate(n, rng)
}

// Bounds returns the extent of points. Empty input yields zero vectors.
func Bounds(points []math.Vec2) (lo, hi math.Vec2) {
	if len(points) == 0 {
		return
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return lo, hi
}
