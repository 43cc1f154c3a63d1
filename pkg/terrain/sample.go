package terrain

import "fmt"

// Sampler answers height queries between the samples of a field built
// over Grid(n, lo, hi).
type Sampler struct {
	field *HeightField
	n     int
	lo    float64
	cell  float64
}

// NewSampler wraps field, which must hold n*n heights in Grid order.
func NewSampler(field *HeightField, n int, lo, hi float64) (*Sampler, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: sampler needs n >= 2, got %d", ErrGridSize, n)
	}
	if field.Len() != n*n {
		return nil, fmt.Errorf("%w: %d heights for a %dx%d grid", ErrMismatch, field.Len(), n, n)
	}
	return &Sampler{
		field: field,
		n:     n,
		lo:    lo,
		cell:  (hi - lo) / float64(n-1),
	}, nil
}

// HeightAt returns the bilinearly interpolated height at (x, y).
// Positions outside the grid are clamped to its edge.
func (s *Sampler) HeightAt(x, y float64) float64 {
	fx := (x - s.lo) / s.cell
	fy := (y - s.lo) / s.cell

	i := min(max(int(fx), 0), s.n-2)
	j := min(max(int(fy), 0), s.n-2)
	tx := min(max(fx-float64(i), 0), 1)
	ty := min(max(fy-float64(j), 0), 1)

	h := s.field.Heights
	sw := h[j*s.n+i]
	se := h[j*s.n+i+1]
	nw := h[(j+1)*s.n+i]
	ne := h[(j+1)*s.n+i+1]

	south := sw*(1-tx) + se*tx
	north := nw*(1-tx) + ne*tx
	return south*(1-ty) + north*ty
}
