// Package noise provides seeded 3-D noise functions with output in [-1, 1].
package noise

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ojrac/opensimplex-go"
)

// ErrUnknownKind is returned by ByName for an unsupported generator.
var ErrUnknownKind = errors.New("unknown noise kind")

// Names of the available generators.
const (
	KindSimplex = "simplex"
	KindPerlin  = "perlin"
)

// Simplex returns OpenSimplex noise seeded with seed.
func Simplex(seed int64) func(x, y, z float64) float64 {
	return opensimplex.New(seed).Eval3
}

// Perlin returns improved Perlin noise seeded with seed.
func Perlin(seed int64) func(x, y, z float64) float64 {
	return newPerlin(seed).Noise3D
}

// ByName looks up a generator by kind. The empty string selects simplex.
func ByName(kind string) (func(seed int64) func(x, y, z float64) float64, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindSimplex:
		return Simplex, nil
	case KindPerlin:
		return Perlin, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
