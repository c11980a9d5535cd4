package board

import (
	"fmt"

	"github.com/slobsterble/aiplayer/tiles"
)

// BingoBonus is awarded for playing all seven rack tiles in one turn.
const BingoBonus = 50

// BingoSize is the number of tiles that must be placed to earn the bonus.
const BingoSize = 7

// crossScore computes one placed tile's contribution from its cross word:
// the sum of the span's values, with the placed tile scaled by its cell's
// letter multiplier, all scaled by the same cell's word multiplier. Returns
// zero when the span is only the tile itself.
func (g *GameBoard) crossScore(pt tiles.PlacedTile, cross Axis, pm map[cellRef]tiles.Tile) (int, error) {
	sr, sc, er, ec := g.spanBounds(pt.Row, pt.Col, cross, pm)
	if sr == er && sc == ec {
		return 0, nil
	}
	mod := g.modifierAt(pt.Row, pt.Col)
	dr, dc := cross.Deltas()
	sum := 0
	for r, c := sr, sc; r <= er && c <= ec; r, c = r+dr, c+dc {
		if r == pt.Row && c == pt.Col {
			sum += pt.Tile.Value * mod.LetterMultiplier
			continue
		}
		t := g.fixedAt(r, c)
		if t == nil {
			return 0, fmt.Errorf("no tile in cross span at (%d,%d)", r, c)
		}
		sum += t.Value
	}
	return sum * mod.WordMultiplier, nil
}

// primaryScore walks the full primary word span. Fixed tiles count at face
// value; newly placed tiles are scaled by their cell's letter multiplier and
// fold the cell's word multiplier into a running product that scales the
// whole word once at the end.
func (g *GameBoard) primaryScore(placement []tiles.PlacedTile, axis Axis, pm map[cellRef]tiles.Tile) (int, error) {
	first, _ := minMaxPlaced(placement)
	sr, sc, er, ec := g.spanBounds(first.Row, first.Col, axis, pm)
	dr, dc := axis.Deltas()
	sum := 0
	wordMultiplier := 1
	for r, c := sr, sc; r <= er && c <= ec; r, c = r+dr, c+dc {
		if t := g.fixedAt(r, c); t != nil {
			sum += t.Value
			continue
		}
		t, ok := pm[cellRef{r, c}]
		if !ok {
			return 0, fmt.Errorf("no tile in word span at (%d,%d)", r, c)
		}
		mod := g.modifierAt(r, c)
		sum += t.Value * mod.LetterMultiplier
		wordMultiplier *= mod.WordMultiplier
	}
	return sum * wordMultiplier, nil
}

// Score computes the point value of a placement: each tile's cross-word
// contribution, plus the primary word's contribution, plus the bingo bonus
// when all seven rack tiles are used.
func (g *GameBoard) Score(placement []tiles.PlacedTile) (int, error) {
	if len(placement) == 0 {
		return 0, ErrEmptyPlacement
	}
	for _, pt := range placement {
		if !g.inBounds(pt.Row, pt.Col) {
			return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, pt.Row, pt.Col)
		}
	}
	pm := placementMap(placement)
	axis := primaryAxis(placement)

	total := 0
	cross := axis.Complement()
	for _, pt := range placement {
		contribution, err := g.crossScore(pt, cross, pm)
		if err != nil {
			return 0, err
		}
		total += contribution
	}
	main, err := g.primaryScore(placement, axis, pm)
	if err != nil {
		return 0, err
	}
	total += main
	if len(placement) == BingoSize {
		total += BingoBonus
	}
	return total, nil
}
