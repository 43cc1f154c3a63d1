package session

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/fractalgen/pkg/fractal"
)

// FractalSession owns the depth and strategy of a tetrahedron view.
type FractalSession struct {
	depth    int
	maxDepth int
	strategy fractal.Strategy
	mesh     *fractal.Mesh
	last     Rebuild
	log      *zap.Logger

	// OnRebuild, when set, receives every new mesh, e.g. to re-upload
	// GPU buffers.
	OnRebuild func(*fractal.Mesh)
}

// NewFractalSession builds the depth-0 mesh. maxDepth <= 0 selects
// fractal.MaxPracticalDepth; values above fractal.MaxDepth are lowered
// to it.
func NewFractalSession(strategy fractal.Strategy, maxDepth int, log *zap.Logger) (*FractalSession, error) {
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %d", fractal.ErrUnknownStrategy, int(strategy))
	}
	if maxDepth <= 0 {
		maxDepth = fractal.MaxPracticalDepth
	}
	s := &FractalSession{
		maxDepth: min(maxDepth, fractal.MaxDepth),
		strategy: strategy,
		log:      componentLogger(log, "fractal"),
	}
	if err := s.rebuild(0, strategy, "init"); err != nil {
		return nil, err
	}
	return s, nil
}

// Depth returns the current subdivision depth.
func (s *FractalSession) Depth() int { return s.depth }

// MaxDepth returns the highest depth Increment will reach.
func (s *FractalSession) MaxDepth() int { return s.maxDepth }

// Strategy returns the current subdivision strategy.
func (s *FractalSession) Strategy() fractal.Strategy { return s.strategy }

// Mesh returns the mesh for the current depth and strategy.
func (s *FractalSession) Mesh() *fractal.Mesh { return s.mesh }

// LastRebuild describes the most recent rebuild.
func (s *FractalSession) LastRebuild() Rebuild { return s.last }

// Increment raises the depth by one. At the limit the state is left
// unchanged and ErrDepthLimit is returned.
func (s *FractalSession) Increment() (*fractal.Mesh, error) {
	if s.depth >= s.maxDepth {
		return s.mesh, fmt.Errorf("%w: %d", ErrDepthLimit, s.maxDepth)
	}
	if err := s.rebuild(s.depth+1, s.strategy, "increment"); err != nil {
		return s.mesh, err
	}
	return s.mesh, nil
}

// Decrement lowers the depth by one. At depth 0 it is a no-op and the
// current mesh is returned without a rebuild.
func (s *FractalSession) Decrement() (*fractal.Mesh, error) {
	if s.depth == 0 {
		return s.mesh, nil
	}
	if err := s.rebuild(s.depth-1, s.strategy, "decrement"); err != nil {
		return s.mesh, err
	}
	return s.mesh, nil
}

// SetDepth jumps straight to depth.
func (s *FractalSession) SetDepth(depth int) (*fractal.Mesh, error) {
	if depth < 0 {
		return s.mesh, fmt.Errorf("%w: %d", fractal.ErrNegativeDepth, depth)
	}
	if depth > s.maxDepth {
		return s.mesh, fmt.Errorf("%w: %d", ErrDepthLimit, s.maxDepth)
	}
	if depth == s.depth {
		return s.mesh, nil
	}
	if err := s.rebuild(depth, s.strategy, "set-depth"); err != nil {
		return s.mesh, err
	}
	return s.mesh, nil
}

// SetStrategy switches the strategy and rebuilds at the current depth.
func (s *FractalSession) SetStrategy(strategy fractal.Strategy) (*fractal.Mesh, error) {
	if !strategy.Valid() {
		return s.mesh, fmt.Errorf("%w: %d", fractal.ErrUnknownStrategy, int(strategy))
	}
	if strategy == s.strategy {
		return s.mesh, nil
	}
	if err := s.rebuild(s.depth, strategy, "set-strategy"); err != nil {
		return s.mesh, err
	}
	return s.mesh, nil
}

// rebuild replaces the mesh. On failure the previous state is kept.
func (s *FractalSession) rebuild(depth int, strategy fractal.Strategy, reason string) error {
	start := time.Now()
	mesh, err := fractal.Build(depth, strategy)
	if err != nil {
		s.log.Warn("rebuild failed",
			zap.String("reason", reason),
			zap.Int("depth", depth),
			zap.Error(err))
		return err
	}

	s.depth = depth
	s.strategy = strategy
	s.mesh = mesh
	s.last = newRebuild(reason, start)

	s.log.Info("mesh rebuilt",
		zap.Stringer("id", s.last.ID),
		zap.String("reason", reason),
		zap.Int("depth", depth),
		zap.Stringer("strategy", strategy),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", len(mesh.Indices)),
		zap.Duration("took", s.last.Took))

	if s.OnRebuild != nil {
		s.OnRebuild(mesh)
	}
	return nil
}
