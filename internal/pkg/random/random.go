// Package random provides the seeded random sources used for reproducible generation.
package random

import (
	"unicode/utf16"
)

//go:generate mockgen -destination=mock/mock_source.go -package=randommock github.com/KirkDiggler/trait-forge/internal/pkg/random Source

// Source yields uniform values in [0,1). Consumption order is part of the
// reproducibility contract, so callers must draw in a fixed order.
type Source interface {
	Float64() float64
}

const (
	width        = 256
	mask         = width - 1
	chunks       = 6
	startDenom   = float64(1 << 48) // width^chunks
	significance = float64(1 << 52)
	overflow     = float64(1 << 53)
)

// Seeded is an ARC4 based generator that reproduces the seedrandom ARC4
// sequence for the same string seed.
type Seeded struct {
	i, j uint8
	s    [width]uint8
	seed string
}

// NewSeeded creates a generator keyed from the given seed string
func NewSeeded(seed string) *Seeded {
	g := &Seeded{seed: seed}
	key := mixKey(seed)
	if len(key) == 0 {
		key = []uint8{0}
	}

	for i := 0; i < width; i++ {
		g.s[i] = uint8(i)
	}
	var j uint8
	for i := 0; i < width; i++ {
		t := g.s[i]
		j = j + key[i%len(key)] + t
		g.s[i] = g.s[j]
		g.s[j] = t
	}

	// RC4-drop[256]
	g.next(width)
	return g
}

// Seed returns the seed the generator was created with
func (g *Seeded) Seed() string {
	return g.seed
}

// Float64 returns the next value with 52 bits of randomness
func (g *Seeded) Float64() float64 {
	n := g.next(chunks)
	d := startDenom
	x := 0.0
	for n < significance {
		n = (n + x) * width
		d *= width
		x = g.next(1)
	}
	for n >= overflow {
		n /= 2
		d /= 2
		x = float64(uint32(x) >> 1)
	}
	return (n + x) / d
}

// next mixes count bytes of keystream into one number, most significant first
func (g *Seeded) next(count int) float64 {
	r := 0.0
	i, j := g.i, g.j
	for ; count > 0; count-- {
		i++
		t := g.s[i]
		j += t
		g.s[i] = g.s[j]
		g.s[j] = t
		r = r*width + float64(g.s[g.s[i]+g.s[j]])
	}
	g.i, g.j = i, j
	return r
}

// mixKey folds the seed's UTF-16 code units into at most 256 key bytes
func mixKey(seed string) []uint8 {
	units := utf16.Encode([]rune(seed))
	size := len(units)
	if size > width {
		size = width
	}

	key := make([]int32, size)
	var smear int32
	for j, unit := range units {
		idx := j & mask
		smear ^= key[idx] * 19
		key[idx] = mask & (smear + int32(unit))
	}

	out := make([]uint8, size)
	for i, k := range key {
		out[i] = uint8(k)
	}
	return out
}
