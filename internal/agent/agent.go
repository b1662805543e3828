// Package agent selects the next cell to probe from the current state of a
// knowledge base: a proven-safe cell when one exists, otherwise a uniform
// pick among the cells whose status is still unknown.
package agent

import (
	"math/rand"

	"sweepmind/internal/knowledge"
	"sweepmind/internal/types"
)

// Agent picks moves over a knowledge base. Randomness is injected so move
// selection is deterministic under a seeded source. Neither selector
// mutates the base.
type Agent struct {
	kb  *knowledge.Base
	rng *rand.Rand
}

// New creates an agent over kb. A nil rng gets a fixed-seed source; inject
// a real one for varied play.
func New(kb *knowledge.Base, rng *rand.Rand) *Agent {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Agent{kb: kb, rng: rng}
}

// SafeMove returns a cell proven safe and not yet played. The second return
// is false when no such cell exists; that is a normal condition, not an
// error. Ties are broken by the injected randomness.
func (a *Agent) SafeMove() (types.Cell, bool) {
	moves := a.kb.Moves()
	var candidates []types.Cell
	for _, c := range a.kb.Safes().Sorted() {
		if !moves.Has(c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return types.Cell{}, false
	}
	return candidates[a.rng.Intn(len(candidates))], true
}

// RandomMove returns a uniformly-chosen cell that has not been played and
// is not a known mine. When every cell is either played or a known mine the
// board is fully accounted for and no move exists.
func (a *Agent) RandomMove() (types.Cell, bool) {
	moves := a.kb.Moves()
	mines := a.kb.Mines()
	if len(moves)+len(mines) == a.kb.Height()*a.kb.Width() {
		return types.Cell{}, false
	}

	var candidates []types.Cell
	for i := 0; i < a.kb.Height(); i++ {
		for j := 0; j < a.kb.Width(); j++ {
			c := types.Cell{Row: i, Col: j}
			if !moves.Has(c) && !mines.Has(c) {
				candidates = append(candidates, c)
			}
		}
	}
	if len(candidates) == 0 {
		return types.Cell{}, false
	}
	return candidates[a.rng.Intn(len(candidates))], true
}
