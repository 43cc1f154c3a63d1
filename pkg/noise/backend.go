package noise

import (
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Backend names a Source implementation.
type Backend string

const (
	// BackendPerlin is the built-in tiling Perlin noise.
	BackendPerlin Backend = "perlin"

	// BackendAquilax is github.com/aquilax/go-perlin with a single octave.
	BackendAquilax Backend = "aquilax"

	// BackendOpenSimplex is github.com/ojrac/opensimplex-go.
	BackendOpenSimplex Backend = "opensimplex"
)

// Backends lists the selectable backends.
var Backends = []Backend{BackendPerlin, BackendAquilax, BackendOpenSimplex}

// NewSource builds the named backend. For BackendPerlin a zero seed
// selects the reference permutation; period only applies to it.
func NewSource(backend Backend, seed int64, period float64) (Source, error) {
	switch Backend(strings.ToLower(string(backend))) {
	case BackendPerlin, "":
		if seed == 0 {
			return NewPerlin(period, period), nil
		}
		return NewSeededPerlin(period, period, seed), nil
	case BackendAquilax:
		return NewAquilax(seed), nil
	case BackendOpenSimplex:
		return NewOpenSimplex(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// NewAquilax returns single-octave go-perlin noise. With one octave the
// library's alpha/beta octave weights have no effect.
func NewAquilax(seed int64) Source {
	return perlin.NewPerlin(2, 2, 1, seed)
}

// openSimplex adapts opensimplex.Noise to Source.
type openSimplex struct {
	noise opensimplex.Noise
}

// NewOpenSimplex returns OpenSimplex noise in roughly [-1, 1].
func NewOpenSimplex(seed int64) Source {
	return openSimplex{noise: opensimplex.New(seed)}
}

func (o openSimplex) Noise2D(x, y float64) float64 {
	return o.noise.Eval2(x, y)
}
