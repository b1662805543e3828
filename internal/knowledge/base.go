package knowledge

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"sweepmind/internal/types"
)

var (
	// ErrDuplicateObservation is returned when Observe is called for a cell
	// that was already observed. Reprocessing could reintroduce a purged
	// cell into a sentence, so the call is rejected outright.
	ErrDuplicateObservation = errors.New("knowledge: cell already observed")

	// ErrInconsistent is returned when the knowledge base derives a
	// contradiction: a sentence with no cells but a non-zero count, or a
	// cell proven both safe and a mine. This means the environment lied or
	// there is an engine bug; the base is poisoned and must be discarded.
	ErrInconsistent = errors.New("knowledge: inconsistent knowledge base")

	// ErrOutOfBounds is returned for observations outside the grid.
	ErrOutOfBounds = errors.New("knowledge: cell out of bounds")
)

// Base is the agent's knowledge base: the ordered collection of live
// sentences plus the derived safe/mine/played sets. A Base is exclusively
// owned by one agent and accessed sequentially; Observe runs its fixed-point
// loop to completion before returning.
type Base struct {
	height int
	width  int

	moves types.CellSet
	safes types.CellSet
	mines types.CellSet

	// Insertion order is kept stable so inference passes are deterministic.
	sentences []*Sentence

	log *zap.Logger
}

// NewBase creates an empty knowledge base for a height x width grid.
// A nil logger defaults to zap.NewNop().
func NewBase(height, width int, log *zap.Logger) *Base {
	if log == nil {
		log = zap.NewNop()
	}
	return &Base{
		height: height,
		width:  width,
		moves:  make(types.CellSet),
		safes:  make(types.CellSet),
		mines:  make(types.CellSet),
		log:    log,
	}
}

// Height returns the grid height the base reasons over.
func (b *Base) Height() int { return b.height }

// Width returns the grid width the base reasons over.
func (b *Base) Width() int { return b.width }

// Moves returns a copy of the set of cells already probed.
func (b *Base) Moves() types.CellSet { return b.moves.Clone() }

// Safes returns a copy of the set of cells proven safe (probed cells included).
func (b *Base) Safes() types.CellSet { return b.safes.Clone() }

// Mines returns a copy of the set of cells proven to be mines.
func (b *Base) Mines() types.CellSet { return b.mines.Clone() }

// SentenceCount returns the number of live sentences.
func (b *Base) SentenceCount() int { return len(b.sentences) }

// Sentences returns value snapshots of the live sentences in insertion
// order. Callers cannot mutate the base through the result.
func (b *Base) Sentences() []Sentence {
	out := make([]Sentence, len(b.sentences))
	for i, s := range b.sentences {
		out[i] = Sentence{cells: s.cells.Clone(), count: s.count}
	}
	return out
}

// Observe ingests one revealed-cell observation: cell was probed and count
// mines sit in its 8-neighborhood. It records the move, folds the
// observation into a new sentence, and then saturates the base — extracting
// every certain safe/mine conclusion and every subset inference — until a
// fixed point is reached.
//
// Returns ErrDuplicateObservation for an already-played cell and
// ErrInconsistent when the observation contradicts existing knowledge.
func (b *Base) Observe(cell types.Cell, count int) error {
	if cell.Row < 0 || cell.Row >= b.height || cell.Col < 0 || cell.Col >= b.width {
		return fmt.Errorf("%w: %s on %dx%d grid", ErrOutOfBounds, cell, b.height, b.width)
	}
	if count < 0 {
		return fmt.Errorf("%w: negative nearby count %d for %s", ErrInconsistent, count, cell)
	}
	if b.moves.Has(cell) {
		return fmt.Errorf("%w: %s", ErrDuplicateObservation, cell)
	}

	b.moves.Add(cell)
	if err := b.markSafe(cell); err != nil {
		return err
	}

	// Partition the neighborhood: known mines reduce the effective count,
	// known safes and played cells drop out, the rest form the new sentence.
	unknown := make(types.CellSet)
	adjusted := count
	for _, n := range b.neighbors(cell) {
		switch {
		case b.mines.Has(n):
			adjusted--
		case b.safes.Has(n) || b.moves.Has(n):
			// Already resolved, contributes nothing.
		default:
			unknown.Add(n)
		}
	}

	if len(unknown) > 0 {
		s, err := NewSentence(unknown, adjusted)
		if err != nil {
			return err
		}
		b.sentences = append(b.sentences, s)
		b.log.Debug("new sentence", zap.Stringer("cell", cell), zap.String("sentence", s.String()))
	} else if adjusted != 0 {
		return fmt.Errorf("%w: observation %s=%d leaves no unknown neighbors but %d unaccounted mines",
			ErrInconsistent, cell, count, adjusted)
	}

	return b.saturate()
}

// neighbors returns the in-bounds cells adjacent to cell, the cell itself
// excluded.
func (b *Base) neighbors(cell types.Cell) []types.Cell {
	out := make([]types.Cell, 0, 8)
	for i := cell.Row - 1; i <= cell.Row+1; i++ {
		for j := cell.Col - 1; j <= cell.Col+1; j++ {
			if i == cell.Row && j == cell.Col {
				continue
			}
			if i < 0 || i >= b.height || j < 0 || j >= b.width {
				continue
			}
			out = append(out, types.Cell{Row: i, Col: j})
		}
	}
	return out
}

// saturate alternates conclusion extraction and subset inference until a
// full pass changes nothing. Termination: every step either resolves a cell,
// shrinks a sentence, or adds a sentence not yet present — all bounded by
// the finite grid.
func (b *Base) saturate() error {
	for {
		concluded, err := b.extractConclusions()
		if err != nil {
			return err
		}
		inferred, err := b.inferSubsets()
		if err != nil {
			return err
		}
		if !concluded && !inferred {
			return nil
		}
	}
}

// extractConclusions repeatedly scans the sentences for ones that have
// become fully determined and propagates their cells base-wide. Conclusions
// are collected before any mutation so the scan never iterates a collection
// it is modifying.
func (b *Base) extractConclusions() (bool, error) {
	changed := false
	for {
		newSafes := make(types.CellSet)
		newMines := make(types.CellSet)
		for _, s := range b.sentences {
			if cells, ok := s.KnownSafes(); ok {
				for c := range cells {
					newSafes.Add(c)
				}
			}
			if cells, ok := s.KnownMines(); ok {
				for c := range cells {
					newMines.Add(c)
				}
			}
		}
		if len(newSafes) == 0 && len(newMines) == 0 {
			return changed, nil
		}
		changed = true
		for _, c := range newSafes.Sorted() {
			b.log.Debug("concluded safe", zap.Stringer("cell", c))
			if err := b.markSafe(c); err != nil {
				return changed, err
			}
		}
		for _, c := range newMines.Sorted() {
			b.log.Debug("concluded mine", zap.Stringer("cell", c))
			if err := b.markMine(c); err != nil {
				return changed, err
			}
		}
	}
}

// inferSubsets derives new sentences from subset pairs: when A's cells are
// contained in B's, the cells of B outside A hold exactly B.count - A.count
// mines. Duplicates are collapsed first so value-equal sentences cannot pair
// with each other. New sentences are collected during the scan and appended
// afterwards.
func (b *Base) inferSubsets() (bool, error) {
	changed := b.dedupe()

	var derived []*Sentence
	for i, a := range b.sentences {
		for j, c := range b.sentences {
			if i == j || !a.SubsetOf(c) {
				continue
			}
			diff := c.Cells()
			for cell := range a.cells {
				diff.Remove(cell)
			}
			count := c.Count() - a.Count()
			if len(diff) == 0 {
				if count != 0 {
					return changed, fmt.Errorf("%w: sentences %s and %s cover the same cells with different counts",
						ErrInconsistent, a, c)
				}
				continue
			}
			s, err := NewSentence(diff, count)
			if err != nil {
				return changed, fmt.Errorf("inferring from %s ⊆ %s: %w", a, c, err)
			}
			if b.contains(s) || containsSentence(derived, s) {
				continue
			}
			derived = append(derived, s)
		}
	}

	for _, s := range derived {
		b.log.Debug("inferred sentence", zap.String("sentence", s.String()))
		b.sentences = append(b.sentences, s)
	}
	return changed || len(derived) > 0, nil
}

// dedupe removes structurally-equal duplicate sentences, keeping the first
// occurrence. Reports whether anything was removed.
func (b *Base) dedupe() bool {
	kept := b.sentences[:0]
	for _, s := range b.sentences {
		if containsSentence(kept, s) {
			continue
		}
		kept = append(kept, s)
	}
	removed := len(b.sentences) != len(kept)
	b.sentences = kept
	return removed
}

func (b *Base) contains(s *Sentence) bool {
	return containsSentence(b.sentences, s)
}

func containsSentence(list []*Sentence, s *Sentence) bool {
	for _, have := range list {
		if have.Equal(s) {
			return true
		}
	}
	return false
}

// markSafe records cell as proven safe and propagates the fact to every
// live sentence, purging any that become vacuous.
func (b *Base) markSafe(cell types.Cell) error {
	if b.mines.Has(cell) {
		return fmt.Errorf("%w: %s marked safe but already known to be a mine", ErrInconsistent, cell)
	}
	b.safes.Add(cell)
	for _, s := range b.sentences {
		s.MarkSafe(cell)
	}
	return b.purgeVacuous()
}

// markMine records cell as a proven mine and propagates the fact to every
// live sentence, purging any that become vacuous.
func (b *Base) markMine(cell types.Cell) error {
	if b.safes.Has(cell) {
		return fmt.Errorf("%w: %s marked mine but already known to be safe", ErrInconsistent, cell)
	}
	b.mines.Add(cell)
	for _, s := range b.sentences {
		s.MarkMine(cell)
	}
	return b.purgeVacuous()
}

// purgeVacuous drops sentences whose cell set emptied out. An empty sentence
// with a non-zero count is a contradiction and surfaces as ErrInconsistent
// rather than being silently dropped.
func (b *Base) purgeVacuous() error {
	kept := b.sentences[:0]
	for _, s := range b.sentences {
		if !s.Vacuous() {
			kept = append(kept, s)
			continue
		}
		if s.Count() != 0 {
			b.sentences = kept
			return fmt.Errorf("%w: empty sentence with count %d", ErrInconsistent, s.Count())
		}
	}
	b.sentences = kept
	return nil
}
