package session

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/fractalgen/pkg/fractal"
)

func newFractal(t *testing.T, maxDepth int) *FractalSession {
	t.Helper()
	s, err := NewFractalSession(fractal.CornerMidpoint, maxDepth, zap.NewNop())
	if err != nil {
		t.Fatalf("NewFractalSession: %v", err)
	}
	return s
}

func TestFractalSessionStartsAtZero(t *testing.T) {
	s := newFractal(t, 0)

	if s.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", s.Depth())
	}
	if s.MaxDepth() != fractal.MaxPracticalDepth {
		t.Errorf("expected max depth %d, got %d", fractal.MaxPracticalDepth, s.MaxDepth())
	}
	if got := len(s.Mesh().Vertices); got != 4 {
		t.Errorf("expected 4 vertices, got %d", got)
	}
	if s.LastRebuild().ID == uuid.Nil {
		t.Error("expected a rebuild id after init")
	}
}

func TestFractalSessionIncrementDecrement(t *testing.T) {
	s := newFractal(t, 3)

	for want := 1; want <= 3; want++ {
		mesh, err := s.Increment()
		if err != nil {
			t.Fatalf("Increment to %d: %v", want, err)
		}
		if s.Depth() != want {
			t.Errorf("expected depth %d, got %d", want, s.Depth())
		}
		if len(mesh.Indices) != fractal.TriangleCount(want) {
			t.Errorf("depth %d: expected %d triangles, got %d", want, fractal.TriangleCount(want), len(mesh.Indices))
		}
	}

	if _, err := s.Increment(); !errors.Is(err, ErrDepthLimit) {
		t.Errorf("expected ErrDepthLimit, got %v", err)
	}
	if s.Depth() != 3 {
		t.Errorf("failed increment changed depth to %d", s.Depth())
	}

	mesh, err := s.Decrement()
	if err != nil {
		t.Fatalf("Decrement: %v", err)
	}
	if s.Depth() != 2 || len(mesh.Vertices) != fractal.VertexCount(2) {
		t.Errorf("expected depth 2 with %d vertices, got depth %d with %d", fractal.VertexCount(2), s.Depth(), len(mesh.Vertices))
	}
}

func TestFractalSessionDecrementAtZero(t *testing.T) {
	s := newFractal(t, 0)
	before := s.LastRebuild().ID
	mesh := s.Mesh()

	got, err := s.Decrement()
	if err != nil {
		t.Fatalf("Decrement: %v", err)
	}
	if s.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", s.Depth())
	}
	if got != mesh {
		t.Error("decrement at zero should keep the current mesh")
	}
	if s.LastRebuild().ID != before {
		t.Error("decrement at zero should not rebuild")
	}
}

func TestFractalSessionMaxDepthCapped(t *testing.T) {
	s := newFractal(t, 99)
	if s.MaxDepth() != fractal.MaxDepth {
		t.Errorf("expected max depth capped to %d, got %d", fractal.MaxDepth, s.MaxDepth())
	}
}

func TestFractalSessionSetDepth(t *testing.T) {
	s := newFractal(t, 4)

	if _, err := s.SetDepth(-1); !errors.Is(err, fractal.ErrNegativeDepth) {
		t.Errorf("expected ErrNegativeDepth, got %v", err)
	}
	if _, err := s.SetDepth(5); !errors.Is(err, ErrDepthLimit) {
		t.Errorf("expected ErrDepthLimit, got %v", err)
	}
	mesh, err := s.SetDepth(4)
	if err != nil {
		t.Fatalf("SetDepth: %v", err)
	}
	if mesh.LeafCount() != fractal.LeafCount(4) {
		t.Errorf("expected %d leaves, got %d", fractal.LeafCount(4), mesh.LeafCount())
	}
}

func TestFractalSessionSetStrategy(t *testing.T) {
	s := newFractal(t, 3)
	if _, err := s.Increment(); err != nil {
		t.Fatalf("Increment: %v", err)
	}

	var rebuilt []*fractal.Mesh
	s.OnRebuild = func(m *fractal.Mesh) { rebuilt = append(rebuilt, m) }

	mesh, err := s.SetStrategy(fractal.ScaleOffset)
	if err != nil {
		t.Fatalf("SetStrategy: %v", err)
	}
	if mesh.Strategy != fractal.ScaleOffset || mesh.Depth != 1 {
		t.Errorf("expected scale-offset at depth 1, got %v at %d", mesh.Strategy, mesh.Depth)
	}
	if len(rebuilt) != 1 || rebuilt[0] != mesh {
		t.Errorf("expected one rebuild callback with the new mesh, got %d", len(rebuilt))
	}

	// Same strategy again is a no-op
	if _, err := s.SetStrategy(fractal.ScaleOffset); err != nil {
		t.Fatalf("SetStrategy: %v", err)
	}
	if len(rebuilt) != 1 {
		t.Errorf("expected no rebuild for unchanged strategy, got %d callbacks", len(rebuilt))
	}

	if _, err := s.SetStrategy(fractal.Strategy(42)); !errors.Is(err, fractal.ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestNewFractalSessionRejectsUnknownStrategy(t *testing.T) {
	if _, err := NewFractalSession(fractal.Strategy(-1), 0, zap.NewNop()); !errors.Is(err, fractal.ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestFractalSessionLogsRebuilds(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s, err := NewFractalSession(fractal.CornerMidpoint, 2, zap.New(core))
	if err != nil {
		t.Fatalf("NewFractalSession: %v", err)
	}
	if _, err := s.Increment(); err != nil {
		t.Fatalf("Increment: %v", err)
	}

	entries := logs.FilterMessage("mesh rebuilt").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 rebuild entries, got %d", len(entries))
	}

	last := entries[1].ContextMap()
	if last["reason"] != "increment" {
		t.Errorf("expected reason increment, got %v", last["reason"])
	}
	if last["depth"] != int64(1) {
		t.Errorf("expected depth 1, got %v", last["depth"])
	}
	if last["id"] != s.LastRebuild().ID.String() {
		t.Errorf("logged id %v does not match %s", last["id"], s.LastRebuild().ID)
	}
	if entries[0].LoggerName != "fractal" {
		t.Errorf("expected logger name fractal, got %q", entries[0].LoggerName)
	}
}
