package pattern

import (
	"math"

	"kent-pattern/internal/core"

	perlin "github.com/aquilax/go-perlin"
)

// Random draws each first-row value uniformly from [0, base). The store asks
// for every column exactly once, so a seeded RNG yields a reproducible row.
func Random(base int, seed int64) core.Sequence {
	rng := core.NewRNG(seed)
	return func(int) uint8 { return rng.Valuen(base) }
}

// Alternating yields 0,1,0,1,... reduced modulo base.
func Alternating(base int, _ int64) core.Sequence {
	return func(col int) uint8 { return uint8((col % 2) % base) }
}

// Single places a lone 1 at column 0, which renders Pascal's triangle
// modulo base.
func Single(int, int64) core.Sequence {
	return func(col int) uint8 {
		if col == 0 {
			return 1
		}
		return 0
	}
}

// Counter yields col mod base.
func Counter(base int, _ int64) core.Sequence {
	return func(col int) uint8 { return uint8(col % base) }
}

const perlinScale = 12.0

// Perlin quantizes smooth 1D noise into base bands.
func Perlin(base int, seed int64) core.Sequence {
	p := perlin.NewPerlin(2, 2, 3, seed)
	return func(col int) uint8 {
		n := p.Noise1D(float64(col) / perlinScale)
		v := int(math.Floor((n + 1) / 2 * float64(base)))
		if v < 0 {
			v = 0
		}
		if v >= base {
			v = base - 1
		}
		return uint8(v)
	}
}

func init() {
	core.RegisterSequence("random", Random)
	core.RegisterSequence("alternating", Alternating)
	core.RegisterSequence("single", Single)
	core.RegisterSequence("counter", Counter)
	core.RegisterSequence("perlin", Perlin)
}
