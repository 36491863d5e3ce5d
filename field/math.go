package field

import "math"

const tau = 2 * math.Pi

// Lerp moves a toward b by the fraction t.
func Lerp(a, b, t float32) float32 {
	return (1-t)*a + t*b
}

// FadeInOut is a triangular envelope over a lifetime of m frames. It rises
// from 0 at t=0 to 1 at t=m/2 and falls back to 0 at t=m, repeating with
// period m. Negative t wraps like positive t.
func FadeInOut(t, m float32) float32 {
	hm := 0.5 * m
	r := float32(math.Mod(float64(t+hm), float64(m)))
	if r < 0 {
		r += m
	}
	return float32(math.Abs(float64(r-hm))) / hm
}
