// Package board owns the ground truth of a game: grid dimensions, mine
// placement, and the nearby-mine oracle. The knowledge engine never looks
// inside a Board; it only receives (cell, count) observations from a driver.
package board

import (
	"fmt"
	"math/rand"

	"sweepmind/internal/types"
)

// Board is an immutable minefield. Mines are placed at construction and
// never move.
type Board struct {
	height int
	width  int
	mines  types.CellSet
}

// New places mineCount mines uniformly at random on a height x width grid.
// A nil rng gets a fixed-seed source.
func New(height, width, mineCount int, rng *rand.Rand) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("board: invalid dimensions %dx%d", height, width)
	}
	if mineCount < 0 || mineCount >= height*width {
		return nil, fmt.Errorf("board: mine count %d out of range for %dx%d grid", mineCount, height, width)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	mines := make(types.CellSet, mineCount)
	for len(mines) < mineCount {
		c := types.Cell{Row: rng.Intn(height), Col: rng.Intn(width)}
		mines.Add(c)
	}
	return &Board{height: height, width: width, mines: mines}, nil
}

// NewWithMines builds a board with an explicit mine layout. Used by tests
// and scripted scenarios.
func NewWithMines(height, width int, mines types.CellSet) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("board: invalid dimensions %dx%d", height, width)
	}
	for c := range mines {
		if c.Row < 0 || c.Row >= height || c.Col < 0 || c.Col >= width {
			return nil, fmt.Errorf("board: mine %s out of bounds on %dx%d grid", c, height, width)
		}
	}
	return &Board{height: height, width: width, mines: mines.Clone()}, nil
}

// Height returns the grid height.
func (b *Board) Height() int { return b.height }

// Width returns the grid width.
func (b *Board) Width() int { return b.width }

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int { return len(b.mines) }

// Mines returns a copy of the mine layout. Drivers use it for the external
// win check; the knowledge engine never sees it.
func (b *Board) Mines() types.CellSet { return b.mines.Clone() }

// IsMine reports whether the cell holds a mine.
func (b *Board) IsMine(c types.Cell) bool { return b.mines.Has(c) }

// NearbyMines counts the mines within one row and column of the cell, the
// cell itself excluded. Only meaningful for a cell that is not itself a mine.
func (b *Board) NearbyMines(c types.Cell) int {
	count := 0
	for i := c.Row - 1; i <= c.Row+1; i++ {
		for j := c.Col - 1; j <= c.Col+1; j++ {
			if i == c.Row && j == c.Col {
				continue
			}
			if i < 0 || i >= b.height || j < 0 || j >= b.width {
				continue
			}
			if b.mines.Has(types.Cell{Row: i, Col: j}) {
				count++
			}
		}
	}
	return count
}

// Won reports whether the flagged set identifies exactly the mines.
func (b *Board) Won(flagged types.CellSet) bool {
	return b.mines.Equal(flagged)
}
