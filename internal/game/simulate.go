package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sweepmind/internal/board"
)

// SimulateOptions configures a batch run.
type SimulateOptions struct {
	Games   int
	Workers int
	Height  int
	Width   int
	Mines   int
	// Seed is the base seed; game i plays with Seed+i, so a batch is fully
	// reproducible.
	Seed int64
}

// Stats aggregates the outcomes of a batch run.
type Stats struct {
	Games      int
	Wins       int
	Losses     int
	Stalls     int
	TotalMoves int
}

// WinRate returns the fraction of games won.
func (s Stats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Simulate plays opts.Games independent seeded games across a bounded
// worker pool and aggregates the outcomes. Each game gets its own board,
// knowledge base and RNG; nothing is shared but the stats counter.
func Simulate(ctx context.Context, opts SimulateOptions, log *zap.Logger) (Stats, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Games <= 0 {
		return Stats{}, fmt.Errorf("game: simulate needs a positive game count, got %d", opts.Games)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	var (
		mu    sync.Mutex
		stats Stats
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < opts.Games; i++ {
		seed := opts.Seed + int64(i)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			b, err := board.New(opts.Height, opts.Width, opts.Mines, rng)
			if err != nil {
				return err
			}
			res, err := NewSession(b, rng, log).Play(ctx)
			if err != nil {
				return fmt.Errorf("game seeded %d: %w", seed, err)
			}

			mu.Lock()
			stats.Games++
			stats.TotalMoves += res.Moves
			switch res.Outcome {
			case OutcomeWon:
				stats.Wins++
			case OutcomeLost:
				stats.Losses++
			case OutcomeStalled:
				stats.Stalls++
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}
	log.Info("simulation finished",
		zap.Int("games", stats.Games),
		zap.Int("wins", stats.Wins),
		zap.Float64("win_rate", stats.WinRate()))
	return stats, nil
}
