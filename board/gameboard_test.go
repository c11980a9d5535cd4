package board

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slobsterble/aiplayer/tiles"
)

func letter(r rune, value int) tiles.Tile {
	return tiles.Tile{Letter: r, Value: value}
}

// testBoard returns an empty 15x15 board.
func testBoard(t *testing.T) *GameBoard {
	t.Helper()
	g, err := New(15, 15)
	require.NoError(t, err)
	return g
}

// placeWord fixes a word on the board, one tile per cell along the axis.
func placeWord(t *testing.T, g *GameBoard, row, col int, axis Axis, word string) {
	t.Helper()
	dr, dc := axis.Deltas()
	for _, r := range word {
		require.NoError(t, g.SetFixedTile(row, col, letter(r, 1)))
		row += dr
		col += dc
	}
}

func TestNewRejectsBadDimensions(t *testing.T) {
	_, err := New(0, 15)
	assert.Error(t, err)
	_, err = New(15, -1)
	assert.Error(t, err)
}

func TestIsOccupied(t *testing.T) {
	is := is.New(t)
	g := testBoard(t)
	is.NoErr(g.SetFixedTile(3, 4, letter('A', 1)))

	occupied, err := g.IsOccupied(3, 4)
	is.NoErr(err)
	is.True(occupied)

	occupied, err = g.IsOccupied(3, 5)
	is.NoErr(err)
	is.True(!occupied)

	_, err = g.IsOccupied(15, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = g.IsOccupied(0, -1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestBuildPlacementLaysTilesOnEmptyCells(t *testing.T) {
	is := is.New(t)
	g := testBoard(t)

	rack := []tiles.Tile{letter('C', 3), letter('A', 1), letter('T', 1)}
	placement, err := g.BuildPlacement(7, 6, rack, Horizontal)
	is.NoErr(err)
	is.Equal(placement, []tiles.PlacedTile{
		{Row: 7, Col: 6, Tile: letter('C', 3)},
		{Row: 7, Col: 7, Tile: letter('A', 1)},
		{Row: 7, Col: 8, Tile: letter('T', 1)},
	})
}

func TestBuildPlacementSkipsOccupiedCells(t *testing.T) {
	is := is.New(t)
	g := testBoard(t)
	// Fixed tiles at (7,7) and (7,8) are skipped over, not placed upon.
	placeWord(t, g, 7, 7, Horizontal, "XY")

	rack := []tiles.Tile{letter('C', 3), letter('A', 1)}
	placement, err := g.BuildPlacement(7, 6, rack, Horizontal)
	is.NoErr(err)
	is.Equal(placement, []tiles.PlacedTile{
		{Row: 7, Col: 6, Tile: letter('C', 3)},
		{Row: 7, Col: 9, Tile: letter('A', 1)},
	})
}

func TestBuildPlacementStartOccupied(t *testing.T) {
	g := testBoard(t)
	placeWord(t, g, 7, 7, Horizontal, "X")

	_, err := g.BuildPlacement(7, 7, []tiles.Tile{letter('A', 1)}, Vertical)
	assert.ErrorIs(t, err, ErrStartOccupied)
}

func TestBuildPlacementOverrunsEdge(t *testing.T) {
	g := testBoard(t)

	rack := []tiles.Tile{letter('A', 1), letter('B', 3), letter('C', 3)}
	_, err := g.BuildPlacement(7, 13, rack, Horizontal)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = g.BuildPlacement(14, 13, rack, Vertical)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestBuildPlacementStartOutOfBounds(t *testing.T) {
	g := testBoard(t)
	_, err := g.BuildPlacement(-1, 0, []tiles.Tile{letter('A', 1)}, Horizontal)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestIsConnected(t *testing.T) {
	is := is.New(t)
	g := testBoard(t)
	placeWord(t, g, 7, 7, Horizontal, "AT")

	adjacent := []tiles.PlacedTile{{Row: 6, Col: 7, Tile: letter('C', 3)}}
	is.True(g.IsConnected(adjacent))

	// Diagonal neighbors do not connect.
	diagonal := []tiles.PlacedTile{{Row: 6, Col: 6, Tile: letter('C', 3)}}
	is.True(!g.IsConnected(diagonal))

	isolated := []tiles.PlacedTile{{Row: 0, Col: 0, Tile: letter('C', 3)}}
	is.True(!g.IsConnected(isolated))
}

func TestIsThroughCenter(t *testing.T) {
	is := is.New(t)
	g := testBoard(t)

	center := []tiles.PlacedTile{{Row: 7, Col: 7, Tile: letter('A', 1)}}
	is.True(g.IsThroughCenter(center))

	offCenter := []tiles.PlacedTile{{Row: 7, Col: 8, Tile: letter('A', 1)}}
	is.True(!g.IsThroughCenter(offCenter))
}

func TestIsAvailable(t *testing.T) {
	is := is.New(t)
	g := testBoard(t)
	placeWord(t, g, 7, 7, Horizontal, "A")

	free := []tiles.PlacedTile{{Row: 7, Col: 6, Tile: letter('C', 3)}}
	ok, err := g.IsAvailable(free)
	is.NoErr(err)
	is.True(ok)

	taken := []tiles.PlacedTile{{Row: 7, Col: 7, Tile: letter('C', 3)}}
	ok, err = g.IsAvailable(taken)
	is.NoErr(err)
	is.True(!ok)

	_, err = g.IsAvailable([]tiles.PlacedTile{{Row: 20, Col: 0, Tile: letter('C', 3)}})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
