package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/WalkerRout/rsgol/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Println("Error loading configuration:", err)
			os.Exit(1)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}

	grid, renderer, stats, err := initializeGame(config, os.Stdout)
	if err != nil {
		fmt.Println("Error initializing game:", err)
		os.Exit(1)
	}
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	lastFrameTime := time.Now()
	reason := ""

loop:
	for {
		frameStart := time.Now()

		// Render the completed generation, then advance; never the reverse
		livingCells, density, status := updateGameState(grid, lastFrameTime, stats)
		lastFrameTime = frameStart

		lines := gameStatus(grid.Generation(), livingCells, density, status, stats)
		if err = drawFrame(renderer, grid, lines); err != nil {
			reason = fmt.Sprintf("render error: %v", err)
			break
		}

		if reachedMaxGenerations(grid.Generation(), config) {
			reason = fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
			break
		}

		grid.Update()

		select {
		case <-sigChan:
			reason = "interrupted"
			break loop
		case <-renderer.Quit():
			reason = "quit"
			break loop
		case <-time.After(config.FrameRate):
		}
	}

	if err = renderer.Close(); err != nil {
		fmt.Println("Error closing renderer:", err)
	}

	fmt.Printf("\nShutting down: %s\n", reason)
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		grid.Generation(), stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
