package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

func main() {
	var (
		configPath = flag.String("config", "config.json", "path to the JSON configuration")
		oneStep    = flag.Bool("step", false, "print a single generation of the start population and exit")
	)
	flag.Parse()

	// Load configuration - fallback to defaults only if the file doesn't exist
	config, err := loadConfig(*configPath, os.Stdout)
	if err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	rng := model.NewRNG(config.Seed)
	start, err := initialPopulation(config, rng)
	if err != nil {
		fmt.Printf("Failed to build start population: %+v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Grid: %dx%d | Mode: %s | Initial living cells: %d\n",
		model.Width, model.Height, config.Mode, start.Len())

	if *oneStep {
		if err = stepOnce(os.Stdout, start); err != nil {
			fmt.Println("Error rendering:", err)
			os.Exit(1)
		}
		return
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch config.Mode {
	case utils.ModeUnbounded:
		err = runUnbounded(ctx, config, start, os.Stdout)
	default:
		err = runSequence(ctx, config, start, rng, os.Stdout)
	}
	if err != nil {
		fmt.Printf("Error: %+v\n", err)
		os.Exit(1)
	}
	fmt.Println("🛑 Shutting down gracefully...")
}
