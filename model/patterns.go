package model

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Seed decides the initial state of a cell from its flat row-major index
type Seed func(index int, c *Cell)

const (
	SeedModulo  = "modulo"
	SeedBlock   = "block"
	SeedGlider  = "glider"
	SeedBlinker = "blinker"
	SeedRandom  = "random"
)

// ModuloSeed marks a cell alive when its index is divisible by 7, by 5, or by
// 4 but not 3
func ModuloSeed(index int, c *Cell) {
	if index%7 == 0 || index%5 == 0 || (index%4 == 0 && index%3 != 0) {
		c.Alive = true
	}
}

// patternSeed places a pattern with its top-left corner at the grid origin
func patternSeed(width int, pattern [][]bool) Seed {
	return func(index int, c *Cell) {
		if width <= 0 {
			return
		}
		row, col := index/width, index%width
		if row < len(pattern) && col < len(pattern[row]) && pattern[row][col] {
			c.Alive = true
		}
	}
}

// BlockSeed places a 2x2 still life at the origin
func BlockSeed(width int) Seed {
	return patternSeed(width, [][]bool{
		{true, true},
		{true, true},
	})
}

// GliderSeed places a glider at the origin, heading down and right
func GliderSeed(width int) Seed {
	return patternSeed(width, [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	})
}

// BlinkerSeed places a horizontal period two oscillator on the second row
func BlinkerSeed(width int) Seed {
	return patternSeed(width, [][]bool{
		{false, false, false},
		{true, true, true},
	})
}

// RandomSeed makes each cell alive with the given probability
func RandomSeed(rng *rand.Rand, density float64) Seed {
	return func(_ int, c *Cell) {
		c.Alive = rng.Float64() < density
	}
}

// SeedByName resolves a named seed for a grid of the given width
func SeedByName(name string, width int, rng *rand.Rand, density float64) (Seed, error) {
	switch name {
	case SeedModulo, "":
		return ModuloSeed, nil
	case SeedBlock:
		return BlockSeed(width), nil
	case SeedGlider:
		return GliderSeed(width), nil
	case SeedBlinker:
		return BlinkerSeed(width), nil
	case SeedRandom:
		if rng == nil {
			return nil, errors.New("[SeedByName] random seed requires a source")
		}
		return RandomSeed(rng, density), nil
	}
	return nil, errors.Errorf("[SeedByName] unknown seed: %q", name)
}
