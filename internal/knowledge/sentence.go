// Package knowledge implements the logical core of sweepmind: sentences of
// the form "exactly count of these cells are mines" and a knowledge base
// that saturates them into certain safe/mine conclusions.
package knowledge

import (
	"fmt"
	"strings"

	"sweepmind/internal/types"
)

// Sentence is a single logical constraint about the board: exactly Count()
// of the cells it holds are mines. Sentences shrink in place as cells are
// resolved; the knowledge base is their sole owner.
type Sentence struct {
	cells types.CellSet
	count int
}

// NewSentence builds a sentence over the given cells. The count must satisfy
// 0 <= count <= len(cells); anything else is unsatisfiable and rejected.
func NewSentence(cells types.CellSet, count int) (*Sentence, error) {
	if count < 0 || count > len(cells) {
		return nil, fmt.Errorf("%w: count %d out of range for %d cells", ErrInconsistent, count, len(cells))
	}
	return &Sentence{cells: cells.Clone(), count: count}, nil
}

// Count returns the number of mines among the remaining cells.
func (s *Sentence) Count() int { return s.count }

// Len returns the number of unresolved cells.
func (s *Sentence) Len() int { return len(s.cells) }

// Cells returns a copy of the unresolved cell set.
func (s *Sentence) Cells() types.CellSet { return s.cells.Clone() }

// Vacuous reports whether the sentence has no cells left. A vacuous sentence
// carries no information and must be dropped from the knowledge base.
func (s *Sentence) Vacuous() bool { return len(s.cells) == 0 }

// KnownMines returns the full cell set when every remaining cell must be a
// mine (count equals the set size). The second return is false when the
// sentence is not yet determined. A vacuous sentence determines nothing.
func (s *Sentence) KnownMines() (types.CellSet, bool) {
	if len(s.cells) == 0 || s.count != len(s.cells) {
		return nil, false
	}
	return s.cells.Clone(), true
}

// KnownSafes returns the full cell set when no remaining cell can be a mine
// (count is zero).
func (s *Sentence) KnownSafes() (types.CellSet, bool) {
	if len(s.cells) == 0 || s.count != 0 {
		return nil, false
	}
	return s.cells.Clone(), true
}

// MarkMine records that cell is a mine: the cell leaves the unknown set and
// the count drops by one. No-op when the cell is not in the sentence, so
// repeated marks are safe.
func (s *Sentence) MarkMine(cell types.Cell) {
	if s.cells.Has(cell) {
		s.cells.Remove(cell)
		s.count--
	}
}

// MarkSafe records that cell is safe: the cell leaves the unknown set and
// the count is unchanged. No-op when the cell is not in the sentence.
func (s *Sentence) MarkSafe(cell types.Cell) {
	s.cells.Remove(cell)
}

// Equal reports structural equality: same cell set, same count. Order of
// insertion is irrelevant.
func (s *Sentence) Equal(other *Sentence) bool {
	return s.count == other.count && s.cells.Equal(other.cells)
}

// SubsetOf reports whether this sentence's cells are all contained in the
// other sentence's cells.
func (s *Sentence) SubsetOf(other *Sentence) bool {
	return s.cells.SubsetOf(other.cells)
}

func (s *Sentence) String() string {
	cells := s.cells.Sorted()
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return fmt.Sprintf("{%s} = %d", strings.Join(parts, ", "), s.count)
}
