package ifs

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBarnsleyWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, m := range Barnsley() {
		sum += m.Weight
	}
	if sum < 0.999999 || sum > 1.000001 {
		t.Errorf("weights sum to %v, want 1", sum)
	}
}

func TestMapApply(t *testing.T) {
	// Second fern map: [[0.85 0.04] [-0.04 0.85]] * (1, 0) + (0, 1.6).
	got := Barnsley()[1].Apply(mgl64.Vec2{1, 0})
	want := mgl64.Vec2{0.85, -0.04 + 1.6}
	if !got.ApproxEqual(want) {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}

func TestPick(t *testing.T) {
	s := Barnsley()
	tests := []struct {
		f    float64
		want int
	}{
		{0, 0},
		{0.0099, 0},
		{0.0101, 1},
		{0.5, 1},
		{0.8601, 2},
		{0.9299, 2},
		{0.9301, 3},
		{0.999, 3},
	}
	for _, tt := range tests {
		got := s.pick(tt.f)
		if got != s[tt.want] {
			t.Errorf("pick(%v) chose %+v, want map %d", tt.f, got, tt.want)
		}
	}
}

func TestFern(t *testing.T) {
	points, err := Fern(5000, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 5000 {
		t.Fatalf("got %d points, want 5000", len(points))
	}

	again, err := Fern(5000, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	for i := range points {
		if points[i] != again[i] {
			t.Fatalf("point %d differs for the same seed", i)
		}
	}

	// The attractor lies within roughly [-2.2, 2.7] x [0, 10].
	lo, hi := Bounds(points)
	if lo.X < -3 || hi.X > 3 || lo.Y < 0 || hi.Y > 10.5 {
		t.Errorf("fern bounds %v..%v outside the known attractor", lo, hi)
	}
}

func TestGenerateRejects(t *testing.T) {
	if _, err := Fern(-1, rand.New(rand.NewSource(1))); !errors.Is(err, ErrNegativeCount) {
		t.Errorf("expected ErrNegativeCount, got %v", err)
	}
	if _, err := (System{}).Generate(10, rand.New(rand.NewSource(1))); !errors.Is(err, ErrNoMaps) {
		t.Errorf("expected ErrNoMaps, got %v", err)
	}
}

func TestGenerateZero(t *testing.T) {
	points, err := Fern(0, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 0 {
		t.Errorf("got %d points, want 0", len(points))
	}
}
