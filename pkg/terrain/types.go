// Package terrain builds procedural height fields from layered noise and
// turns them into renderable surface meshes.
package terrain

import (
	"github.com/Faultbox/fractalgen/pkg/noise"
)

// Range is a closed elevation interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// DefaultTarget is the default elevation range: a little
// below sea level up to the highest peaks.
var DefaultTarget = Range{Min: -0.05, Max: 0.2}

// HeightField is one height per input point, remapped into Target.
type HeightField struct {
	Heights []float64
	RawMin  float64 // minimum before remapping
	RawMax  float64 // maximum before remapping
	Target  Range
	Params  noise.Params
}

// Len returns the number of samples.
func (h *HeightField) Len() int {
	return len(h.Heights)
}

// Flat reports whether the raw field had no variation.
func (h *HeightField) Flat() bool {
	return h.RawMax-h.RawMin < flatEpsilon
}

// Vertex is a surface vertex ready for GPU upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Height   float32 // scalar for colour mapping
}

// Mesh holds a surface mesh built from a height field.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds holds the axis-aligned bounding box of the surface.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}
