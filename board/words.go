package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/slobsterble/aiplayer/tiles"
)

// ErrEmptyPlacement is returned when a word or score operation is given no
// placed tiles.
var ErrEmptyPlacement = errors.New("placement has no tiles")

type cellRef struct {
	row, col int
}

func placementMap(placement []tiles.PlacedTile) map[cellRef]tiles.Tile {
	pm := make(map[cellRef]tiles.Tile, len(placement))
	for _, pt := range placement {
		pm[cellRef{pt.Row, pt.Col}] = pt.Tile
	}
	return pm
}

// primaryAxis determines the axis a placement is laid along. With two or
// more tiles the first pair decides: same row means horizontal. A lone tile
// always resolves to vertical; this mirrors the historical behavior, where
// scanning both axes for contiguous neighbors collapsed to the vertical
// branch either way.
func primaryAxis(placement []tiles.PlacedTile) Axis {
	if len(placement) >= 2 {
		if placement[0].Row == placement[1].Row {
			return Horizontal
		}
		return Vertical
	}
	return Vertical
}

// coveredAt reports whether the cell holds a fixed tile or one of this
// placement's tiles.
func (g *GameBoard) coveredAt(row, col int, pm map[cellRef]tiles.Tile) bool {
	if !g.inBounds(row, col) {
		return false
	}
	if g.fixedAt(row, col) != nil {
		return true
	}
	_, ok := pm[cellRef{row, col}]
	return ok
}

// spanBounds extends outward from (row,col) along the axis through every
// contiguous covered cell and returns the inclusive bounds of the run.
func (g *GameBoard) spanBounds(row, col int, axis Axis, pm map[cellRef]tiles.Tile) (sr, sc, er, ec int) {
	dr, dc := axis.Deltas()
	sr, sc = row, col
	for g.coveredAt(sr-dr, sc-dc, pm) {
		sr, sc = sr-dr, sc-dc
	}
	er, ec = row, col
	for g.coveredAt(er+dr, ec+dc, pm) {
		er, ec = er+dr, ec+dc
	}
	return sr, sc, er, ec
}

// readWord reads the letters of the covered run from (sr,sc) to (er,ec).
// Every cell in the run must hold either a fixed tile or a placed tile; a
// gap is a violated invariant, not a recoverable condition.
func (g *GameBoard) readWord(sr, sc, er, ec int, axis Axis, pm map[cellRef]tiles.Tile) (string, error) {
	dr, dc := axis.Deltas()
	var sb strings.Builder
	for r, c := sr, sc; r <= er && c <= ec; r, c = r+dr, c+dc {
		if t := g.fixedAt(r, c); t != nil {
			sb.WriteRune(t.Letter)
			continue
		}
		t, ok := pm[cellRef{r, c}]
		if !ok {
			return "", fmt.Errorf("no tile in word span at (%d,%d)", r, c)
		}
		if !t.HasLetter() {
			return "", fmt.Errorf("unresolved blank in word span at (%d,%d)", r, c)
		}
		sb.WriteRune(t.Letter)
	}
	return sb.String(), nil
}

// minMaxPlaced returns the first and last placed tiles in board order.
func minMaxPlaced(placement []tiles.PlacedTile) (min, max tiles.PlacedTile) {
	min, max = placement[0], placement[0]
	for _, pt := range placement[1:] {
		if pt.Less(min) {
			min = pt
		}
		if max.Less(pt) {
			max = pt
		}
	}
	return min, max
}

// WordsFormed derives every word created by the placement: the word along
// the primary axis first, then one cross word per placed tile whose span
// along the complementary axis covers more than one cell.
func (g *GameBoard) WordsFormed(placement []tiles.PlacedTile) ([]string, error) {
	if len(placement) == 0 {
		return nil, ErrEmptyPlacement
	}
	for _, pt := range placement {
		if !g.inBounds(pt.Row, pt.Col) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, pt.Row, pt.Col)
		}
	}
	pm := placementMap(placement)
	axis := primaryAxis(placement)

	first, last := minMaxPlaced(placement)
	sr, sc, er, ec := g.spanBounds(first.Row, first.Col, axis, pm)
	if last.Row > er || last.Col > ec {
		return nil, fmt.Errorf("placement is not contiguous between (%d,%d) and (%d,%d)",
			first.Row, first.Col, last.Row, last.Col)
	}
	primary, err := g.readWord(sr, sc, er, ec, axis, pm)
	if err != nil {
		return nil, err
	}
	words := []string{primary}

	cross := axis.Complement()
	for _, pt := range placement {
		csr, csc, cer, cec := g.spanBounds(pt.Row, pt.Col, cross, pm)
		if csr == cer && csc == cec {
			continue
		}
		word, err := g.readWord(csr, csc, cer, cec, cross, pm)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	return words, nil
}
