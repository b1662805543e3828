package types

import "testing"

func TestCellString(t *testing.T) {
	c := Cell{Row: 2, Col: 7}
	if got, want := c.String(), "(2, 7)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCellLess(t *testing.T) {
	if !(Cell{Row: 0, Col: 9}).Less(Cell{Row: 1, Col: 0}) {
		t.Error("row must dominate column")
	}
	if !(Cell{Row: 1, Col: 0}).Less(Cell{Row: 1, Col: 1}) {
		t.Error("column breaks row ties")
	}
	if (Cell{Row: 1, Col: 1}).Less(Cell{Row: 1, Col: 1}) {
		t.Error("a cell is not less than itself")
	}
}

func TestCellSetBasics(t *testing.T) {
	s := NewCellSet(Cell{Row: 0, Col: 0}, Cell{Row: 1, Col: 1})
	if !s.Has(Cell{Row: 0, Col: 0}) {
		t.Error("expected member")
	}
	if s.Has(Cell{Row: 2, Col: 2}) {
		t.Error("unexpected member")
	}

	s.Remove(Cell{Row: 0, Col: 0})
	if s.Has(Cell{Row: 0, Col: 0}) {
		t.Error("remove failed")
	}
	s.Remove(Cell{Row: 9, Col: 9}) // no-op
	if len(s) != 1 {
		t.Errorf("expected 1 element, got %d", len(s))
	}
}

func TestCellSetEqualAndSubset(t *testing.T) {
	a := NewCellSet(Cell{Row: 0, Col: 0}, Cell{Row: 0, Col: 1})
	b := NewCellSet(Cell{Row: 0, Col: 1}, Cell{Row: 0, Col: 0})
	c := NewCellSet(Cell{Row: 0, Col: 0}, Cell{Row: 0, Col: 1}, Cell{Row: 0, Col: 2})

	if !a.Equal(b) {
		t.Error("order must not matter for equality")
	}
	if a.Equal(c) {
		t.Error("different sizes are never equal")
	}
	if !a.SubsetOf(c) {
		t.Error("a should be a subset of c")
	}
	if c.SubsetOf(a) {
		t.Error("c is not a subset of a")
	}
	if !a.SubsetOf(a) {
		t.Error("a set is a subset of itself")
	}
}

func TestCellSetCloneIsIndependent(t *testing.T) {
	a := NewCellSet(Cell{Row: 0, Col: 0})
	b := a.Clone()
	b.Add(Cell{Row: 1, Col: 1})
	if a.Has(Cell{Row: 1, Col: 1}) {
		t.Error("clone must not share storage")
	}
}

func TestCellSetSortedIsRowMajor(t *testing.T) {
	s := NewCellSet(Cell{Row: 1, Col: 0}, Cell{Row: 0, Col: 1}, Cell{Row: 0, Col: 0})
	got := s.Sorted()
	want := []Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sorted()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
