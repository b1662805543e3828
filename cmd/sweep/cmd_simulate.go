package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sweepmind/internal/game"
)

var (
	simGames   int
	simWorkers int
)

// simulateCmd plays many seeded games and aggregates win-rate statistics.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play many seeded games and report the win rate",
	Long: `Plays N independent games across a bounded worker pool. Game i uses
seed+i, so a run is fully reproducible given --seed.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simGames, "games", 0, "number of games (default from config)")
	simulateCmd.Flags().IntVar(&simWorkers, "workers", 0, "worker pool size (default from config)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	opts := game.SimulateOptions{
		Games:   cfg.Simulate.Games,
		Workers: cfg.Simulate.Workers,
		Height:  cfg.Board.Height,
		Width:   cfg.Board.Width,
		Mines:   cfg.Board.Mines,
		Seed:    cfg.Seed,
	}
	if simGames > 0 {
		opts.Games = simGames
	}
	if simWorkers > 0 {
		opts.Workers = simWorkers
	}

	stats, err := game.Simulate(cmd.Context(), opts, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Played %d games on %dx%d with %d mines (seed %d)\n",
		stats.Games, opts.Height, opts.Width, opts.Mines, opts.Seed)
	fmt.Printf("  won:     %d (%.1f%%)\n", stats.Wins, stats.WinRate()*100)
	fmt.Printf("  lost:    %d\n", stats.Losses)
	fmt.Printf("  stalled: %d\n", stats.Stalls)
	if stats.Games > 0 {
		fmt.Printf("  avg moves/game: %.1f\n", float64(stats.TotalMoves)/float64(stats.Games))
	}
	return nil
}
