// Package types provides shared value types used across sweepmind packages.
// This package exists to break import cycles between knowledge, board, and
// agent. Types in this package are foundational data structures with no
// dependencies beyond the standard library.
package types

import (
	"fmt"
	"sort"
)

// Cell is a single board coordinate. Cells are compared by value and are
// usable as map keys.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Less orders cells row-major. Used wherever a deterministic iteration
// order over a cell set is needed.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// CellSet is an unordered set of cells.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Add inserts a cell into the set.
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

// Remove deletes a cell from the set. No-op if absent.
func (s CellSet) Remove(c Cell) {
	delete(s, c)
}

// Has reports whether the cell is in the set.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Clone returns an independent copy of the set.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets contain exactly the same cells.
func (s CellSet) Equal(other CellSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Has(c) {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every cell of s is also in other.
func (s CellSet) SubsetOf(other CellSet) bool {
	if len(s) > len(other) {
		return false
	}
	for c := range s {
		if !other.Has(c) {
			return false
		}
	}
	return true
}

// Sorted returns the cells in row-major order.
func (s CellSet) Sorted() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
