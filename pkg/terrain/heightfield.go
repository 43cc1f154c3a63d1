package terrain

import (
	"fmt"
	"math"

	fmath "github.com/Faultbox/fractalgen/pkg/math"
	"github.com/Faultbox/fractalgen/pkg/noise"
)

// flatEpsilon is the raw span below which a field counts as flat.
const flatEpsilon = 1e-12

// Builder computes height fields. Source and Offset are fixed for the
// life of the process; Params arrive with every Build call.
type Builder struct {
	Source noise.Source
	Offset noise.Offset
	Target Range
	Root   RootPolicy
}

// NewBuilder returns a builder with the default target range and
// RootClamp policy.
func NewBuilder(src noise.Source, off noise.Offset) *Builder {
	return &Builder{
		Source: src,
		Offset: off,
		Target: DefaultTarget,
		Root:   RootClamp,
	}
}

// Build computes a height for every point and remaps the whole field
// from its raw [min, max] into b.Target. The result is aligned 1:1 with
// points. A flat field maps every point to Target.Min.
//
// The remap depends on the global extremes, so heights cannot be updated
// point by point: any parameter change means a full rebuild, costing
// O(len(points) * params.Octaves) noise samples.
func (b *Builder) Build(points []fmath.Vec2, params noise.Params) (*HeightField, error) {
	if b.Source == nil {
		return nil, ErrNoSource
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := b.Target.validate(); err != nil {
		return nil, err
	}

	field := &HeightField{
		Heights: make([]float64, len(points)),
		Target:  b.Target,
		Params:  params,
	}
	if len(points) == 0 {
		return field, nil
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		h := b.Height(p.X, p.Y, params)
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return nil, fmt.Errorf("%w at point %d (%v, %v)", ErrNonFinite, i, p.X, p.Y)
		}
		field.Heights[i] = h
		lo = min(lo, h)
		hi = max(hi, h)
	}
	field.RawMin, field.RawMax = lo, hi

	remap(field.Heights, lo, hi, b.Target)
	return field, nil
}

// remap rescales values from [lo, hi] into target in place.
func remap(values []float64, lo, hi float64, target Range) {
	span := hi - lo
	if span < flatEpsilon {
		for i := range values {
			values[i] = target.Min
		}
		return
	}
	for i, v := range values {
		t := (v - lo) / span
		values[i] = target.Min*(1-t) + target.Max*t
	}
}

func (r Range) validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) || r.Min >= r.Max {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidTarget, r.Min, r.Max)
	}
	return nil
}
