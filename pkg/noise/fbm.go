package noise

import (
	"math/rand"
	"time"
)

// MaxOffset bounds the random offset components.
const MaxOffset = 10000

// Offset shifts every sample so repeated runs look at different parts
// of the noise field. It is chosen once per process.
type Offset struct {
	X, Y float64
}

// NewOffset draws an offset with integer components in [0, MaxOffset].
func NewOffset(rng *rand.Rand) Offset {
	return Offset{
		X: float64(rng.Intn(MaxOffset + 1)),
		Y: float64(rng.Intn(MaxOffset + 1)),
	}
}

// SeededOffset draws an offset from seed. A zero seed uses the clock.
// The seed actually used is returned for logging.
func SeededOffset(seed int64) (Offset, int64) {
	if seed == 0 {
		seed = time.Now().Unix()
	}
	return NewOffset(rand.New(rand.NewSource(seed))), seed
}

// FBM sums params.Octaves samples of src at growing frequency and
// shrinking amplitude and divides by the total amplitude. params must
// have passed Validate.
func FBM(src Source, x, y float64, params Params, off Offset) float64 {
	total := 0.0
	frequency := 1.0
	amplitude := 1.0
	norm := 0.0
	for range params.Octaves {
		total += amplitude * src.Noise2D(x*frequency+off.X, y*frequency+off.Y)
		norm += amplitude
		amplitude *= params.Persistence
		frequency *= params.Lacunarity
	}
	return total / norm
}
