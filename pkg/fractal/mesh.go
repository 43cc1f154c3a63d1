package fractal

import (
	"fmt"

	"github.com/Faultbox/fractalgen/pkg/math"
)

const (
	// MaxDepth is the deepest build whose indices still fit in uint32.
	MaxDepth = 15

	// MaxPracticalDepth is the advisory bound for interactive use.
	// Depth 7 already produces 65536 vertices and triangles.
	MaxPracticalDepth = 7
)

// faceTemplate lists the four faces of a leaf relative to its first vertex.
var faceTemplate = [4][3]uint32{
	{0, 1, 2},
	{0, 1, 3},
	{0, 2, 3},
	{1, 2, 3},
}

// Mesh is the flattened output of a build, ready for upload.
type Mesh struct {
	Depth    int
	Strategy Strategy
	Vertices []math.Vec3
	Indices  [][3]uint32
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// LeafCount returns the number of leaf tetrahedra at depth (4^depth).
func LeafCount(depth int) int {
	return 1 << (2 * depth)
}

// VertexCount returns the number of vertices at depth (4^(depth+1)).
func VertexCount(depth int) int {
	return 4 * LeafCount(depth)
}

// TriangleCount returns the number of triangles at depth (4^(depth+1)).
func TriangleCount(depth int) int {
	return 4 * LeafCount(depth)
}

// BufferBytes estimates the GPU memory needed for a build at depth:
// three float32 per vertex plus three uint32 per triangle.
func BufferBytes(depth int) int64 {
	return int64(VertexCount(depth))*12 + int64(TriangleCount(depth))*12
}

// Build subdivides the canonical tetrahedron depth times using strategy
// and returns the flattened mesh. Leaves are emitted depth-first with
// children visited in vertex order, so the output is reproducible.
//
// Memory grows by a factor of four per level; Build does not guard
// against large depths below MaxDepth.
func Build(depth int, strategy Strategy) (*Mesh, error) {
	return BuildFrom(Canonical(), depth, strategy)
}

// BuildFrom is Build with a caller-supplied root tetrahedron.
func BuildFrom(root Tetrahedron, depth int, strategy Strategy) (*Mesh, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: %d > %d", ErrDepthOverflow, depth, MaxDepth)
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}

	mesh := &Mesh{
		Depth:    depth,
		Strategy: strategy,
		Vertices: make([]math.Vec3, 0, VertexCount(depth)),
		Indices:  make([][3]uint32, 0, TriangleCount(depth)),
	}

	type frame struct {
		tet   Tetrahedron
		level int
	}

	// Depth-first with an explicit stack; at most 3 siblings wait per level.
	stack := make([]frame, 1, 3*depth+1)
	stack[0] = frame{tet: root, level: depth}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.level == 0 {
			mesh.appendLeaf(f.tet)
			continue
		}

		children := strategy.Subdivide(f.tet)
		// Push in reverse so child 0 is emitted first.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{tet: children[i], level: f.level - 1})
		}
	}

	return mesh, nil
}

func (m *Mesh) appendLeaf(t Tetrahedron) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, t[0], t[1], t[2], t[3])
	for _, face := range faceTemplate {
		m.Indices = append(m.Indices, [3]uint32{base + face[0], base + face[1], base + face[2]})
	}
}

// LeafCount returns the number of leaf tetrahedra in the mesh.
func (m *Mesh) LeafCount() int {
	return len(m.Vertices) / 4
}

// Leaf returns the i-th leaf tetrahedron.
func (m *Mesh) Leaf(i int) Tetrahedron {
	var t Tetrahedron
	copy(t[:], m.Vertices[4*i:4*i+4])
	return t
}

// Buffers flattens the mesh into interleaved float32 positions and a
// uint32 index list, the layout a GL vertex/element buffer expects.
func (m *Mesh) Buffers() ([]float32, []uint32) {
	positions := make([]float32, 0, 3*len(m.Vertices))
	for _, v := range m.Vertices {
		p := v.Float32()
		positions = append(positions, p[0], p[1], p[2])
	}

	indices := make([]uint32, 0, 3*len(m.Indices))
	for _, tri := range m.Indices {
		indices = append(indices, tri[0], tri[1], tri[2])
	}
	return positions, indices
}

// Bounds returns the axis-aligned bounding box of the vertices.
// An empty mesh yields a zero box.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		b.Min.X = min(b.Min.X, v.X)
		b.Min.Y = min(b.Min.Y, v.Y)
		b.Min.Z = min(b.Min.Z, v.Z)
		b.Max.X = max(b.Max.X, v.X)
		b.Max.Y = max(b.Max.Y, v.Y)
		b.Max.Z = max(b.Max.Z, v.Z)
	}
	return b
}
