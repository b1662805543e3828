package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sweepmind/internal/board"
	"sweepmind/internal/game"
)

// solveCmd plays a single headless game and reports the result.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Play one full game headless and print the result",
	Long: `Plays a single game to completion with no UI. Every move and every
deduction the knowledge base makes is logged (use --verbose to see the
sentence-level inferences).`,
	RunE: runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	rng := newRNG()
	b, err := board.New(cfg.Board.Height, cfg.Board.Width, cfg.Board.Mines, rng)
	if err != nil {
		return err
	}

	session := game.NewSession(b, rng, logger)
	logger.Info("starting game",
		zap.Int("height", b.Height()),
		zap.Int("width", b.Width()),
		zap.Int("mines", b.MineCount()),
		zap.Int64("seed", cfg.Seed))

	res, err := session.Play(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Session %s: %s\n", res.ID, res.Outcome)
	fmt.Printf("  moves made:    %d\n", res.Moves)
	fmt.Printf("  mines flagged: %d/%d\n", res.Flagged, b.MineCount())
	fmt.Printf("  live sentences: %d\n", res.Sentences)
	return nil
}
