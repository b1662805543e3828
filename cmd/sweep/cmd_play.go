package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sweepmind/cmd/sweep/ui"
	"sweepmind/internal/board"
	"sweepmind/internal/game"
)

// playCmd launches the interactive board.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Watch the agent play on an interactive board",
	Long: `Opens a terminal UI showing the board, the agent's knowledge (proven
safes, proven mines, live sentences) and the move log. Step the agent one
move at a time or let it run.`,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	rng := newRNG()
	b, err := board.New(cfg.Board.Height, cfg.Board.Width, cfg.Board.Mines, rng)
	if err != nil {
		return err
	}

	session := game.NewSession(b, rng, logger)
	model := ui.NewPlayModel(session)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
