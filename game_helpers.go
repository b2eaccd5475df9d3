package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/WalkerRout/rsgol/model"
	"github.com/WalkerRout/rsgol/utils"
)

// initializeGame builds and seeds the grid, runs the warm-up generations and
// opens the configured renderer
func initializeGame(config utils.Config, out io.Writer) (
	*model.Grid,
	model.Renderer,
	*utils.Stats,
	error,
) {
	grid, err := newGrid(config)
	if err != nil {
		return nil, nil, nil, err
	}

	renderer, err := newRenderer(config, out)
	if err != nil {
		return nil, nil, nil, err
	}

	return grid, renderer, utils.NewStats(), nil
}

// newGrid creates the seeded grid. Warm-up generations are stepped and the
// resulting matrix loaded back, so the first frame shown is already evolved.
func newGrid(config utils.Config) (*model.Grid, error) {
	grid := model.NewGrid(config.Width, config.Height)
	grid.SetWorkers(config.ParallelWorkers)

	randomSeed := config.RandomSeed
	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}
	seed, err := model.SeedByName(config.Seed, config.Width, rand.New(rand.NewSource(randomSeed)), config.RandomDensity)
	if err != nil {
		return nil, errors.Wrap(err, "[newGrid] failed to resolve seed")
	}
	grid.Modify(seed)

	if config.WarmupGenerations > 0 {
		if !grid.LoadMap(grid.StepIterations(config.WarmupGenerations)) {
			return nil, errors.New("[newGrid] warm-up produced a jagged map")
		}
	}
	return grid, nil
}

func newRenderer(config utils.Config, out io.Writer) (model.Renderer, error) {
	switch config.Renderer {
	case utils.RendererScreen:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, errors.Wrap(err, "[newRenderer] failed to create screen")
		}
		renderer, err := model.NewScreenRenderer(screen)
		if err != nil {
			return nil, err
		}
		return renderer, nil
	case utils.RendererANSI, "":
		return &model.TerminalRenderer{Out: out}, nil
	}
	return nil, errors.Errorf("[newRenderer] unknown renderer: %q", config.Renderer)
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Seed: %s | Renderer: %s | Workers: %d\n",
		config.Seed, config.Renderer, max(1, config.ParallelWorkers))
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState records the current generation and returns status information
func updateGameState(
	grid *model.Grid,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string) {
	livingCells := grid.CountLivingCells()

	density := 0.0
	if area := grid.GetWidth() * grid.GetHeight(); area > 0 {
		density = float64(livingCells) / float64(area) * 100
	}

	stats.Update(grid.Generation(), livingCells, time.Since(lastFrameTime))

	// Compare against earlier generations before recording this one
	status := "Active"
	if grid.IsStagnant() {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}
	grid.UpdateHistory()

	return livingCells, density, status
}

// gameStatus formats the status lines shown under each frame
func gameStatus(generation, livingCells int, density float64, status string, stats *utils.Stats) []string {
	return []string{
		fmt.Sprintf("iter: %d | Living: %d | Density: %.1f%% | Status: %s",
			generation, livingCells, density, status),
		fmt.Sprintf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
			stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds()),
	}
}

// drawFrame paints a completed generation followed by its status lines
func drawFrame(renderer model.Renderer, grid *model.Grid, lines []string) error {
	if err := renderer.Clear(); err != nil {
		return err
	}
	if err := renderer.Display(grid); err != nil {
		return err
	}
	for _, line := range lines {
		if err := renderer.Status(line); err != nil {
			return err
		}
	}
	return nil
}

// reachedMaxGenerations reports whether a bounded run is complete
func reachedMaxGenerations(generation int, config utils.Config) bool {
	return config.MaxGenerations > 0 && generation >= config.MaxGenerations
}
