// Package noise provides coherent 2D noise sources and the fractal
// Brownian motion sum built on top of them.
package noise

import (
	"math"
	"math/rand"
)

// DefaultPeriod is the lattice period used for tiling in both axes.
const DefaultPeriod = 1024

// Source is a deterministic 2D coherent noise function.
type Source interface {
	Noise2D(x, y float64) float64
}

// referencePerm is Ken Perlin's reference permutation.
var referencePerm = [256]int{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// gradients are the XY components of the 16 improved-Perlin edge vectors.
var gradients = [16][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {1, 0}, {-1, 0},
	{0, 1}, {0, -1}, {0, 1}, {0, -1},
	{1, 0}, {-1, 0}, {0, -1}, {0, 1},
}

// Perlin is classic 2D gradient noise whose lattice wraps every
// periodX/periodY cells, so the field tiles seamlessly. Output is in
// roughly [-1, 1] and exactly 0 on lattice points.
type Perlin struct {
	perm    [512]int
	periodX float64
	periodY float64
}

// NewPerlin returns tiling Perlin noise on the reference permutation.
// A period <= 0 disables wrapping on that axis.
func NewPerlin(periodX, periodY float64) *Perlin {
	p := &Perlin{periodX: periodX, periodY: periodY}
	for i := range 256 {
		p.perm[i] = referencePerm[i]
		p.perm[256+i] = referencePerm[i]
	}
	return p
}

// NewSeededPerlin returns tiling Perlin noise on a permutation shuffled
// by seed (Fisher-Yates).
func NewSeededPerlin(periodX, periodY float64, seed int64) *Perlin {
	p := &Perlin{periodX: periodX, periodY: periodY}
	rng := rand.New(rand.NewSource(seed))
	for i := range 256 {
		p.perm[i] = i
	}
	for i := 255; i > 0; i-- {
		j := rng.Intn(i + 1)
		p.perm[i], p.perm[j] = p.perm[j], p.perm[i]
	}
	for i := range 256 {
		p.perm[256+i] = p.perm[i]
	}
	return p
}

// Period returns the wrap period on each axis.
func (p *Perlin) Period() (float64, float64) {
	return p.periodX, p.periodY
}

// Noise2D evaluates the noise at (x, y).
func (p *Perlin) Noise2D(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)

	i := wrap(fx, p.periodX)
	j := wrap(fy, p.periodY)
	ii := wrap(float64(i)+1, p.periodX) & 255
	jj := wrap(float64(j)+1, p.periodY) & 255
	i &= 255
	j &= 255

	x -= fx
	y -= fy
	u := fade(x)
	v := fade(y)

	a := p.perm[i]
	aa := p.perm[a+j]
	ab := p.perm[a+jj]
	b := p.perm[ii]
	ba := p.perm[b+j]
	bb := p.perm[b+jj]

	return lerp(v,
		lerp(u, grad(p.perm[aa], x, y), grad(p.perm[ba], x-1, y)),
		lerp(u, grad(p.perm[ab], x, y-1), grad(p.perm[bb], x-1, y-1)))
}

// wrap reduces a lattice coordinate into [0, period).
func wrap(v, period float64) int {
	if period <= 0 {
		return int(v)
	}
	m := math.Mod(v, period)
	if m < 0 {
		m += period
	}
	return int(m)
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y float64) float64 {
	g := gradients[hash&15]
	return g[0]*x + g[1]*y
}
