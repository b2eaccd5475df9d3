package model

import (
	"math/rand"
	"testing"
)

func TestModuloSeed(t *testing.T) {
	tests := map[int]bool{
		0: true, 1: false, 4: true, 5: true, 6: false, 7: true, 8: true,
		9: false, 10: true, 12: false, 14: true, 15: true, 21: true, 24: false,
	}
	for index, expected := range tests {
		var c Cell
		ModuloSeed(index, &c)
		if c.Alive != expected {
			t.Errorf("ModuloSeed(%d) alive=%v, expected %v", index, c.Alive, expected)
		}
	}
}

func TestModuloSeedNeverKills(t *testing.T) {
	c := Cell{Alive: true}
	ModuloSeed(1, &c)
	if !c.Alive {
		t.Fatal("ModuloSeed cleared a living cell")
	}
}

func TestPatternSeeds(t *testing.T) {
	tests := []struct {
		name     string
		seed     Seed
		expected []Position
	}{
		{name: SeedBlock, seed: BlockSeed(6), expected: []Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{name: SeedGlider, seed: GliderSeed(6), expected: []Position{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}},
		{name: SeedBlinker, seed: BlinkerSeed(6), expected: []Position{{1, 0}, {1, 1}, {1, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(6, 6)
			g.Modify(tt.seed)
			expectAlive(t, g, tt.expected...)
		})
	}
}

func TestPatternSeedClipsToNarrowGrid(t *testing.T) {
	g := NewGrid(1, 3)
	g.Modify(BlockSeed(1))
	expectAlive(t, g, Position{0, 0}, Position{1, 0})
}

func TestRandomSeedDeterministic(t *testing.T) {
	a, b := NewGrid(20, 20), NewGrid(20, 20)
	a.Modify(RandomSeed(rand.New(rand.NewSource(99)), 0.5))
	b.Modify(RandomSeed(rand.New(rand.NewSource(99)), 0.5))
	if a.GetGridHash() != b.GetGridHash() {
		t.Fatal("same source produced different grids")
	}

	empty := NewGrid(20, 20)
	empty.Modify(RandomSeed(rand.New(rand.NewSource(99)), 0))
	if empty.CountLivingCells() != 0 {
		t.Fatal("zero density produced living cells")
	}
}

func TestSeedByName(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, name := range []string{"", SeedModulo, SeedBlock, SeedGlider, SeedBlinker, SeedRandom} {
		seed, err := SeedByName(name, 10, rng, 0.2)
		if err != nil || seed == nil {
			t.Errorf("SeedByName(%q) = %v, %v", name, seed, err)
		}
	}

	if _, err := SeedByName("acorn", 10, rng, 0.2); err == nil {
		t.Error("expected an error for an unknown seed")
	}
	if _, err := SeedByName(SeedRandom, 10, nil, 0.2); err == nil {
		t.Error("expected an error for a random seed without a source")
	}
}
