package noise

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

var (
	ErrInvalidOctaves     = errors.New("noise: octaves must be at least 1")
	ErrInvalidPersistence = errors.New("noise: persistence must be positive and finite")
	ErrInvalidLacunarity  = errors.New("noise: lacunarity must be positive and finite")
	ErrUnknownBackend     = errors.New("noise: unknown backend")
)

// Params controls the octave sum. Values are immutable; build a new
// Params for every change.
type Params struct {
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
}

// DefaultParams returns the startup values of the terrain controls.
func DefaultParams() Params {
	return Params{Octaves: 4, Persistence: 0.4, Lacunarity: 3}
}

// Validate reports every parameter that would make the normalised sum
// undefined or meaningless.
func (p Params) Validate() error {
	var err error
	if p.Octaves < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: got %d", ErrInvalidOctaves, p.Octaves))
	}
	if !(p.Persistence > 0) || math.IsInf(p.Persistence, 0) {
		err = multierr.Append(err, fmt.Errorf("%w: got %v", ErrInvalidPersistence, p.Persistence))
	}
	if !(p.Lacunarity > 0) || math.IsInf(p.Lacunarity, 0) {
		err = multierr.Append(err, fmt.Errorf("%w: got %v", ErrInvalidLacunarity, p.Lacunarity))
	}
	return err
}

// Range is a closed interval for a UI control.
type Range struct {
	Min, Max float64
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Control ranges exposed by the terrain sliders.
var (
	OctaveRange      = Range{Min: 1, Max: 12}
	PersistenceRange = Range{Min: 0.3, Max: 0.7}
	LacunarityRange  = Range{Min: 1.5, Max: 3.5}
)

// Clamp returns p limited to the control ranges.
func (p Params) Clamp() Params {
	return Params{
		Octaves:     int(OctaveRange.Clamp(float64(p.Octaves))),
		Persistence: PersistenceRange.Clamp(p.Persistence),
		Lacunarity:  LacunarityRange.Clamp(p.Lacunarity),
	}
}

// String formats p for log lines.
func (p Params) String() string {
	return fmt.Sprintf("octaves=%d persistence=%.3f lacunarity=%.3f", p.Octaves, p.Persistence, p.Lacunarity)
}
