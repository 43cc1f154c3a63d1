package terrain

import (
	"fmt"
	"math"
	"strings"

	"github.com/Faultbox/fractalgen/pkg/noise"
)

const (
	// Inside plainsRadius the terrain is pure plains.
	plainsRadius = 0.3
	// Outside mountainRadius the terrain is pure mountains.
	mountainRadius = 0.7

	plainsShift = 0.6
)

// RootPolicy decides how the plains profile takes the fourth root of a
// negative noise value.
type RootPolicy int

const (
	// RootClamp raises negative values to zero first, flattening every
	// trough to the plains floor.
	RootClamp RootPolicy = iota

	// RootSigned keeps the sign: -|b|^(1/4).
	RootSigned
)

// String returns the policy's config name.
func (p RootPolicy) String() string {
	switch p {
	case RootClamp:
		return "clamp"
	case RootSigned:
		return "signed"
	default:
		return "unknown"
	}
}

// ParseRootPolicy resolves a config name. An empty name selects
// RootClamp.
func ParseRootPolicy(name string) (RootPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "clamp", "":
		return RootClamp, nil
	case "signed":
		return RootSigned, nil
	}
	return RootClamp, fmt.Errorf("%w: %q", ErrUnknownRootPolicy, name)
}

func (p RootPolicy) root4(b float64) float64 {
	if p == RootSigned {
		return math.Copysign(math.Pow(math.Abs(b), 0.25), b)
	}
	return math.Pow(math.Max(b, 0), 0.25)
}

// BlendWeight returns the plains weight for a sample: 1 near the origin,
// 0 beyond mountainRadius and a linear ramp in between. The ramp ends
// are exact only when r itself is; a point such as 0.7*(cos a, sin a)
// may land a rounding step inside and weigh ~1e-16.
func BlendWeight(x, y float64) float64 {
	// Explicit conversions keep the compiler from fusing into FMA.
	r := math.Sqrt(float64(x*x) + float64(y*y))
	switch {
	case r < plainsRadius:
		return 1
	case r > mountainRadius:
		return 0
	}
	// Scaled by ten so the ramp ends are exact constants.
	return (mountainRadius*10 - float64(10*r)) / ((mountainRadius - plainsRadius) * 10)
}

// Mountain is the high-frequency, amplified profile.
func (b *Builder) Mountain(x, y float64, params noise.Params) float64 {
	return 2 * noise.FBM(b.Source, 6*x, 3*y, params, b.Offset)
}

// Plains is the fourth-root compressed profile shifted below zero.
func (b *Builder) Plains(x, y float64, params noise.Params) float64 {
	return b.Root.root4(noise.FBM(b.Source, x, y, params, b.Offset)) - plainsShift
}

// Height returns the blended, unmapped height at (x, y).
func (b *Builder) Height(x, y float64, params noise.Params) float64 {
	w := BlendWeight(x, y)
	var m, p float64
	// Skip the profile that carries no weight.
	if w < 1 {
		m = b.Mountain(x, y, params)
	}
	if w > 0 {
		p = b.Plains(x, y, params)
	}
	return (1-w)*m + w*p
}
