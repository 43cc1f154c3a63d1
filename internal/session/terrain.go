package session

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/fractalgen/pkg/math"
	"github.com/Faultbox/fractalgen/pkg/noise"
	"github.com/Faultbox/fractalgen/pkg/terrain"
)

// Control names one terrain slider.
type Control int

const (
	Octaves Control = iota
	Persistence
	Lacunarity
)

var controlNames = [...]string{"octaves", "persistence", "lacunarity"}

func (c Control) String() string {
	if c < 0 || int(c) >= len(controlNames) {
		return fmt.Sprintf("Control(%d)", int(c))
	}
	return controlNames[c]
}

// Range returns the slider range of c.
func (c Control) Range() noise.Range {
	switch c {
	case Octaves:
		return noise.OctaveRange
	case Persistence:
		return noise.PersistenceRange
	default:
		return noise.LacunarityRange
	}
}

// ParseControl resolves a slider name.
func ParseControl(name string) (Control, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range controlNames {
		if n == name {
			return Control(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownControl, name)
}

// TerrainSession owns the slider values for a fixed grid and offset.
type TerrainSession struct {
	builder *terrain.Builder
	points  []math.Vec2
	params  noise.Params
	field   *terrain.HeightField
	last    Rebuild
	log     *zap.Logger

	// OnRebuild, when set, receives every new field.
	OnRebuild func(*terrain.HeightField)
}

// NewTerrainSession clamps params to the slider ranges and builds the
// initial field over points.
func NewTerrainSession(builder *terrain.Builder, points []math.Vec2, params noise.Params, log *zap.Logger) (*TerrainSession, error) {
	s := &TerrainSession{
		builder: builder,
		points:  points,
		log:     componentLogger(log, "terrain"),
	}
	if err := s.rebuild(params.Clamp(), "init"); err != nil {
		return nil, err
	}
	return s, nil
}

// Params returns the current slider values.
func (s *TerrainSession) Params() noise.Params { return s.params }

// Field returns the current height field.
func (s *TerrainSession) Field() *terrain.HeightField { return s.field }

// Points returns the fixed sample points.
func (s *TerrainSession) Points() []math.Vec2 { return s.points }

// LastRebuild describes the most recent rebuild.
func (s *TerrainSession) LastRebuild() Rebuild { return s.last }

// Set moves one slider. value is clamped to the control's range and
// octaves are truncated to an integer. A fresh params value is built
// and the whole field recomputed.
func (s *TerrainSession) Set(c Control, value float64) (*terrain.HeightField, error) {
	next := s.params
	v := c.Range().Clamp(value)
	switch c {
	case Octaves:
		next.Octaves = int(v)
	case Persistence:
		next.Persistence = v
	case Lacunarity:
		next.Lacunarity = v
	default:
		return s.field, fmt.Errorf("%w: %v", ErrUnknownControl, c)
	}

	if err := s.rebuild(next, "set-"+c.String()); err != nil {
		return s.field, err
	}
	return s.field, nil
}

// rebuild replaces the field. On failure the previous state is kept.
func (s *TerrainSession) rebuild(params noise.Params, reason string) error {
	start := time.Now()
	field, err := s.builder.Build(s.points, params)
	if err != nil {
		s.log.Warn("rebuild failed",
			zap.String("reason", reason),
			zap.Stringer("params", params),
			zap.Error(err))
		return err
	}

	s.params = params
	s.field = field
	s.last = newRebuild(reason, start)

	s.log.Info("field rebuilt",
		zap.Stringer("id", s.last.ID),
		zap.String("reason", reason),
		zap.Stringer("params", params),
		zap.Int("points", field.Len()),
		zap.Float64("raw_min", field.RawMin),
		zap.Float64("raw_max", field.RawMax),
		zap.Duration("took", s.last.Took))

	if s.OnRebuild != nil {
		s.OnRebuild(field)
	}
	return nil
}
