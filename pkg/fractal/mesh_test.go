package fractal

import (
	"errors"
	gomath "math"
	"testing"
)

const eps = 1e-12

func TestBuildCounts(t *testing.T) {
	for _, s := range Strategies {
		for depth := range 6 {
			mesh, err := Build(depth, s)
			if err != nil {
				t.Fatalf("%v depth %d: %v", s, depth, err)
			}
			want := 1 << (2 * (depth + 1))
			if len(mesh.Vertices) != want {
				t.Errorf("%v depth %d: got %d vertices, want %d", s, depth, len(mesh.Vertices), want)
			}
			if len(mesh.Indices) != want {
				t.Errorf("%v depth %d: got %d triangles, want %d", s, depth, len(mesh.Indices), want)
			}
			if mesh.LeafCount() != LeafCount(depth) {
				t.Errorf("%v depth %d: got %d leaves, want %d", s, depth, mesh.LeafCount(), LeafCount(depth))
			}
		}
	}
}

func TestBuildGrowsByFour(t *testing.T) {
	for _, s := range Strategies {
		prev, err := Build(0, s)
		if err != nil {
			t.Fatal(err)
		}
		for depth := 1; depth <= 5; depth++ {
			next, err := Build(depth, s)
			if err != nil {
				t.Fatal(err)
			}
			if len(next.Vertices) != 4*len(prev.Vertices) {
				t.Errorf("%v depth %d: %d vertices, want 4 x %d", s, depth, len(next.Vertices), len(prev.Vertices))
			}
			prev = next
		}
	}
}

func TestBuildDepthOne(t *testing.T) {
	mesh, err := Build(1, CornerMidpoint)
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh.Vertices) != 16 || len(mesh.Indices) != 16 {
		t.Fatalf("got %d vertices / %d triangles, want 16 / 16", len(mesh.Vertices), len(mesh.Indices))
	}
	for i, tri := range mesh.Indices {
		for _, idx := range tri {
			if idx >= 16 {
				t.Errorf("triangle %d: index %d out of range", i, idx)
			}
		}
	}
}

func TestIndicesStayInsideLeaf(t *testing.T) {
	for _, s := range Strategies {
		mesh, err := Build(3, s)
		if err != nil {
			t.Fatal(err)
		}
		n := uint32(len(mesh.Vertices))
		for i, tri := range mesh.Indices {
			a, b, c := tri[0], tri[1], tri[2]
			if a >= n || b >= n || c >= n {
				t.Fatalf("%v triangle %d: %v references past %d vertices", s, i, tri, n)
			}
			if a == b || b == c || a == c {
				t.Errorf("%v triangle %d: repeated index in %v", s, i, tri)
			}
			if a/4 != b/4 || b/4 != c/4 {
				t.Errorf("%v triangle %d: %v spans leaves", s, i, tri)
			}
			if int(a/4) != i/4 {
				t.Errorf("%v triangle %d: belongs to leaf %d, want %d", s, i, a/4, i/4)
			}
		}
	}
}

func TestFaceOrder(t *testing.T) {
	mesh, err := Build(1, CornerMidpoint)
	if err != nil {
		t.Fatal(err)
	}
	want := [][3]uint32{
		{4, 5, 6}, {4, 5, 7}, {4, 6, 7}, {5, 6, 7},
	}
	for i, tri := range want {
		if mesh.Indices[4+i] != tri {
			t.Errorf("leaf 1 face %d = %v, want %v", i, mesh.Indices[4+i], tri)
		}
	}
}

func TestCanonicalIsRegular(t *testing.T) {
	mesh, err := Build(0, CornerMidpoint)
	if err != nil {
		t.Fatal(err)
	}
	if mesh.Leaf(0) != Canonical() {
		t.Fatalf("depth 0 should return the canonical tetrahedron, got %v", mesh.Leaf(0))
	}
	for i, e := range Canonical().Edges() {
		if gomath.Abs(e-1) > eps {
			t.Errorf("edge %d length = %v, want 1", i, e)
		}
	}
}

func TestCornerMidpointLeafEdges(t *testing.T) {
	const depth = 4
	mesh, err := Build(depth, CornerMidpoint)
	if err != nil {
		t.Fatal(err)
	}
	want := gomath.Ldexp(1, -depth)
	for i := range mesh.LeafCount() {
		for j, e := range mesh.Leaf(i).Edges() {
			if gomath.Abs(e-want) > 1e-9 {
				t.Fatalf("leaf %d edge %d = %v, want %v", i, j, e, want)
			}
		}
	}
}

func TestScaleTowardVertexMatchesMidpoints(t *testing.T) {
	for depth := range 5 {
		a, err := Build(depth, CornerMidpoint)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Build(depth, ScaleTowardVertex)
		if err != nil {
			t.Fatal(err)
		}
		for i := range a.Vertices {
			if !a.Vertices[i].ApproxEqual(b.Vertices[i], eps) {
				t.Fatalf("depth %d vertex %d: %v vs %v", depth, i, a.Vertices[i], b.Vertices[i])
			}
		}
	}
}

func TestScaleOffsetDiverges(t *testing.T) {
	a, err := Build(1, CornerMidpoint)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(1, ScaleOffset)
	if err != nil {
		t.Fatal(err)
	}

	same := true
	for i := range a.Vertices {
		if !a.Vertices[i].ApproxEqual(b.Vertices[i], eps) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("scale-offset should not reproduce the midpoint construction")
	}

	// The first child is the parent halved about the origin, offset by v0 = 0.
	c := Canonical()
	for i := range 4 {
		want := c[i].Scale(0.5)
		if !b.Vertices[i].ApproxEqual(want, eps) {
			t.Errorf("vertex %d = %v, want %v", i, b.Vertices[i], want)
		}
	}
}

func TestCornerMidpointBoundsMatchRoot(t *testing.T) {
	mesh, err := Build(3, CornerMidpoint)
	if err != nil {
		t.Fatal(err)
	}
	c := Canonical()
	root := &Mesh{Vertices: c[:]}
	got, want := mesh.Bounds(), root.Bounds()
	if !got.Min.ApproxEqual(want.Min, eps) || !got.Max.ApproxEqual(want.Max, eps) {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}

func TestBuildRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		depth    int
		strategy Strategy
		want     error
	}{
		{"negative depth", -1, CornerMidpoint, ErrNegativeDepth},
		{"overflow", MaxDepth + 1, CornerMidpoint, ErrDepthOverflow},
		{"unknown strategy", 1, Strategy(42), ErrUnknownStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh, err := Build(tt.depth, tt.strategy)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got error %v, want %v", err, tt.want)
			}
			if mesh != nil {
				t.Error("failed build should not return a mesh")
			}
		})
	}
}

func TestBuffers(t *testing.T) {
	mesh, err := Build(2, ScaleTowardVertex)
	if err != nil {
		t.Fatal(err)
	}
	positions, indices := mesh.Buffers()
	if len(positions) != 3*VertexCount(2) {
		t.Errorf("got %d floats, want %d", len(positions), 3*VertexCount(2))
	}
	if len(indices) != 3*TriangleCount(2) {
		t.Errorf("got %d indices, want %d", len(indices), 3*TriangleCount(2))
	}
	if indices[3] != mesh.Indices[1][0] {
		t.Errorf("flattened index 3 = %d, want %d", indices[3], mesh.Indices[1][0])
	}
}

func TestBufferBytes(t *testing.T) {
	if got := BufferBytes(0); got != 96 {
		t.Errorf("BufferBytes(0) = %d, want 96", got)
	}
	if got := BufferBytes(1); got != 4*96 {
		t.Errorf("BufferBytes(1) = %d, want %d", got, 4*96)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range Strategies {
		got, err := ParseStrategy(s.String())
		if err != nil {
			t.Fatalf("ParseStrategy(%q): %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseStrategy(%q) = %v, want %v", s.String(), got, s)
		}
	}

	if got, err := ParseStrategy("Scale_Toward_Vertex"); err != nil || got != ScaleTowardVertex {
		t.Errorf("ParseStrategy should normalise case and underscores, got %v, %v", got, err)
	}
	if _, err := ParseStrategy("octahedron"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

func BenchmarkBuild(b *testing.B) {
	for _, s := range Strategies {
		b.Run(s.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = Build(6, s)
			}
		})
	}
}
