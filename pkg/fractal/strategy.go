package fractal

import (
	"fmt"
	"strings"

	"github.com/Faultbox/fractalgen/pkg/math"
)

// Strategy selects how a tetrahedron is split into four children.
type Strategy int

const (
	// CornerMidpoint splits along the six edge midpoints and keeps the
	// four corner tetrahedra, each holding one original vertex.
	CornerMidpoint Strategy = iota

	// ScaleTowardVertex shrinks the parent by 1/2 about each of its
	// vertices in turn, so that vertex stays fixed.
	ScaleTowardVertex

	// ScaleOffset shrinks the parent by 1/2 about the origin and then
	// translates the copy by each vertex. Unlike the other two, the
	// children are not contained in the parent and the figure drifts
	// away from the origin with every level.
	ScaleOffset
)

// Strategies lists every supported strategy in declaration order.
var Strategies = []Strategy{CornerMidpoint, ScaleTowardVertex, ScaleOffset}

var strategyNames = map[Strategy]string{
	CornerMidpoint:    "corner-midpoint",
	ScaleTowardVertex: "scale-toward-vertex",
	ScaleOffset:       "scale-offset",
}

// String returns the strategy's config name.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy resolves a config name (case-insensitive, '_' and '-'
// are interchangeable).
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for s, n := range strategyNames {
		if n == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Subdivide returns the four children of t in a fixed order.
// The caller must pass a valid strategy.
func (s Strategy) Subdivide(t Tetrahedron) [4]Tetrahedron {
	switch s {
	case ScaleTowardVertex:
		return scaleTowardVertex(t)
	case ScaleOffset:
		return scaleOffset(t)
	default:
		return cornerMidpoint(t)
	}
}

func cornerMidpoint(t Tetrahedron) [4]Tetrahedron {
	m01 := t[0].Midpoint(t[1])
	m02 := t[0].Midpoint(t[2])
	m03 := t[0].Midpoint(t[3])
	m12 := t[1].Midpoint(t[2])
	m13 := t[1].Midpoint(t[3])
	m23 := t[2].Midpoint(t[3])

	return [4]Tetrahedron{
		{t[0], m01, m02, m03},
		{m01, t[1], m12, m13},
		{m02, m12, t[2], m23},
		{m03, m13, m23, t[3]},
	}
}

func scaleTowardVertex(t Tetrahedron) [4]Tetrahedron {
	var out [4]Tetrahedron
	for i, v := range t {
		out[i] = t.Transform(math.ScaleAbout(v, 0.5))
	}
	return out
}

func scaleOffset(t Tetrahedron) [4]Tetrahedron {
	var out [4]Tetrahedron
	for i, v := range t {
		out[i] = t.Transform(math.TranslateVec3(v).Mul(math.UniformScale(0.5)))
	}
	return out
}
