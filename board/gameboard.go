// Package board models one turn's snapshot of the game board: a dense grid
// of tiles fixed by prior turns and a matching grid of score modifiers. A
// GameBoard is built fresh from each polled snapshot and is read-only for
// the duration of the turn's move search.
package board

import (
	"errors"
	"fmt"

	"github.com/slobsterble/aiplayer/tiles"
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid,
	// or when a placement walks past the grid edge.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrStartOccupied is returned by BuildPlacement when the start cell
	// already holds a fixed tile.
	ErrStartOccupied = errors.New("placement start cell is occupied")
)

// Modifier is the per-cell multiplier pair. It affects the scoring of newly
// placed tiles only; tiles fixed in prior turns always count at face value.
type Modifier struct {
	LetterMultiplier int
	WordMultiplier   int
}

var unitModifier = Modifier{LetterMultiplier: 1, WordMultiplier: 1}

// GameBoard holds the fixed tiles and modifiers as flat row-major grids, so
// that a bounds check is a single comparison and there is no nested-slice
// aliasing to reason about.
type GameBoard struct {
	rows      int
	cols      int
	fixed     []*tiles.Tile
	modifiers []Modifier
}

// New returns an empty rows x cols board with unit modifiers everywhere.
func New(rows, cols int) (*GameBoard, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid board dimensions %dx%d", rows, cols)
	}
	g := &GameBoard{
		rows:      rows,
		cols:      cols,
		fixed:     make([]*tiles.Tile, rows*cols),
		modifiers: make([]Modifier, rows*cols),
	}
	for i := range g.modifiers {
		g.modifiers[i] = unitModifier
	}
	return g, nil
}

// Dims returns the board dimensions.
func (g *GameBoard) Dims() (rows, cols int) {
	return g.rows, g.cols
}

func (g *GameBoard) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *GameBoard) index(row, col int) int {
	return row*g.cols + col
}

// SetModifier assigns the modifier for one cell. Used during construction
// from the snapshot's sparse modifier list.
func (g *GameBoard) SetModifier(row, col int, m Modifier) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("%w: modifier at (%d,%d)", ErrOutOfBounds, row, col)
	}
	g.modifiers[g.index(row, col)] = m
	return nil
}

// SetFixedTile places a tile fixed by a prior turn. Used during construction
// from the snapshot's board state.
func (g *GameBoard) SetFixedTile(row, col int, t tiles.Tile) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("%w: fixed tile at (%d,%d)", ErrOutOfBounds, row, col)
	}
	g.fixed[g.index(row, col)] = &t
	return nil
}

// IsOccupied reports whether the cell holds a fixed tile.
func (g *GameBoard) IsOccupied(row, col int) (bool, error) {
	if !g.inBounds(row, col) {
		return false, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	return g.fixed[g.index(row, col)] != nil, nil
}

// fixedAt assumes in-bounds coordinates. Returns nil for an empty cell.
func (g *GameBoard) fixedAt(row, col int) *tiles.Tile {
	return g.fixed[g.index(row, col)]
}

// modifierAt assumes in-bounds coordinates.
func (g *GameBoard) modifierAt(row, col int) Modifier {
	return g.modifiers[g.index(row, col)]
}

// IsAvailable reports whether every target cell of the placement is empty.
func (g *GameBoard) IsAvailable(placement []tiles.PlacedTile) (bool, error) {
	for _, pt := range placement {
		occupied, err := g.IsOccupied(pt.Row, pt.Col)
		if err != nil {
			return false, err
		}
		if occupied {
			return false, nil
		}
	}
	return true, nil
}

// IsConnected reports whether at least one placed tile has a 4-neighbor cell
// that already holds a fixed tile.
func (g *GameBoard) IsConnected(placement []tiles.PlacedTile) bool {
	for _, pt := range placement {
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nr, nc := pt.Row+d[0], pt.Col+d[1]
			if g.inBounds(nr, nc) && g.fixedAt(nr, nc) != nil {
				return true
			}
		}
	}
	return false
}

// IsThroughCenter reports whether any placed tile covers the center cell.
func (g *GameBoard) IsThroughCenter(placement []tiles.PlacedTile) bool {
	cr, cc := g.rows/2, g.cols/2
	for _, pt := range placement {
		if pt.Row == cr && pt.Col == cc {
			return true
		}
	}
	return false
}

// BuildPlacement walks from the start cell along the axis, laying one rack
// tile per empty cell. Occupied cells are skipped over without consuming a
// tile; the pre-existing letter fills that gap of the word. Fails with
// ErrStartOccupied if the start cell holds a fixed tile, and with
// ErrOutOfBounds if the walk runs past the grid edge before all tiles are
// placed. The returned sequence has exactly one entry per supplied tile.
func (g *GameBoard) BuildPlacement(startRow, startCol int, rack []tiles.Tile, axis Axis) ([]tiles.PlacedTile, error) {
	occupied, err := g.IsOccupied(startRow, startCol)
	if err != nil {
		return nil, err
	}
	if occupied {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrStartOccupied, startRow, startCol)
	}
	dr, dc := axis.Deltas()
	placement := make([]tiles.PlacedTile, 0, len(rack))
	row, col := startRow, startCol
	for _, t := range rack {
		for g.inBounds(row, col) && g.fixedAt(row, col) != nil {
			row += dr
			col += dc
		}
		if !g.inBounds(row, col) {
			return nil, fmt.Errorf("%w: placement overruns edge at (%d,%d)", ErrOutOfBounds, row, col)
		}
		placement = append(placement, tiles.PlacedTile{Row: row, Col: col, Tile: t})
		row += dr
		col += dc
	}
	return placement, nil
}
