package noise

import (
	"math"
	"math/rand"
)

// gradients holds the twelve cube-edge directions of improved Perlin noise,
// padded to sixteen with four repeats so a 4-bit hash picks one directly.
var gradients = [16][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
	{1, 1, 0}, {0, -1, 1}, {-1, 1, 0}, {0, -1, -1},
}

// perlin is an improved-Perlin generator over a seeded permutation table.
type perlin struct {
	perm [512]uint8
}

func newPerlin(seed int64) *perlin {
	p := &perlin{}
	rng := rand.New(rand.NewSource(seed))
	for i, v := range rng.Perm(256) {
		p.perm[i] = uint8(v)
		p.perm[i+256] = uint8(v)
	}
	return p
}

// hash maps a lattice corner to a gradient index. Coordinates are in
// [0, 256], so every lookup stays inside the doubled table.
func (p *perlin) hash(x, y, z int) uint8 {
	return p.perm[int(p.perm[int(p.perm[x])+y])+z]
}

// Noise3D returns the noise value at (x, y, z). The sum of eight corner
// contributions can overshoot 1 slightly near cell diagonals, so the result
// is clamped to keep the package's [-1, 1] contract.
func (p *perlin) Noise3D(x, y, z float64) float64 {
	var cell [3]int
	var frac [3]float64
	for i, v := range [3]float64{x, y, z} {
		f := math.Floor(v)
		cell[i] = int(f) & 255
		frac[i] = v - f
	}

	// Corner c has offset bits (c&1, c>>1&1, c>>2&1) along x, y, z.
	var dots [8]float64
	for c := range dots {
		ox, oy, oz := c&1, c>>1&1, c>>2&1
		g := gradients[p.hash(cell[0]+ox, cell[1]+oy, cell[2]+oz)&15]
		dots[c] = g[0]*(frac[0]-float64(ox)) +
			g[1]*(frac[1]-float64(oy)) +
			g[2]*(frac[2]-float64(oz))
	}

	u, v, w := quintic(frac[0]), quintic(frac[1]), quintic(frac[2])

	// Collapse along x, then y, then z.
	y0 := mix(mix(dots[0], dots[1], u), mix(dots[2], dots[3], u), v)
	y1 := mix(mix(dots[4], dots[5], u), mix(dots[6], dots[7], u), v)
	n := mix(y0, y1, w)

	return math.Max(-1, math.Min(1, n))
}

// quintic is the 6t^5 - 15t^4 + 10t^3 easing curve.
func quintic(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func mix(a, b, t float64) float64 {
	return a + t*(b-a)
}
