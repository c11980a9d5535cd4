// Package tiles defines the game tiles held on a rack or placed on the
// board. A tile with no letter is an unresolved blank; it must be given a
// letter before it can participate in a word, but it keeps a value of zero
// even once lettered.
package tiles

import "fmt"

// NoLetter marks a tile whose letter has not been resolved yet.
const NoLetter rune = 0

// Tile is a single game tile. Immutable once constructed; operations that
// change a tile return a new one.
type Tile struct {
	Letter rune
	Value  int
	Blank  bool
}

// HasLetter returns false for an unresolved blank.
func (t Tile) HasLetter() bool {
	return t.Letter != NoLetter
}

// WithLetter returns a copy of this tile resolved to the given letter. The
// blank flag and value are preserved.
func (t Tile) WithLetter(letter rune) Tile {
	return Tile{Letter: letter, Value: t.Value, Blank: t.Blank}
}

// Compare defines a strict total order on tiles: letterless tiles sort
// before all lettered ones; then by letter; then non-blank before blank;
// then ascending value. Returns -1, 0, or 1.
func (t Tile) Compare(o Tile) int {
	if t.Letter != o.Letter {
		if t.Letter < o.Letter {
			return -1
		}
		return 1
	}
	if t.Blank != o.Blank {
		if !t.Blank {
			return -1
		}
		return 1
	}
	if t.Value != o.Value {
		if t.Value < o.Value {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether t sorts before o.
func (t Tile) Less(o Tile) bool {
	return t.Compare(o) < 0
}

func (t Tile) String() string {
	if !t.HasLetter() {
		return "?"
	}
	if t.Blank {
		return fmt.Sprintf("%c?", t.Letter)
	}
	return string(t.Letter)
}

// PlacedTile is a tile bound to board coordinates.
type PlacedTile struct {
	Row  int
	Col  int
	Tile Tile
}

// Compare orders placed tiles by row, then column, then tile.
func (p PlacedTile) Compare(o PlacedTile) int {
	if p.Row != o.Row {
		if p.Row < o.Row {
			return -1
		}
		return 1
	}
	if p.Col != o.Col {
		if p.Col < o.Col {
			return -1
		}
		return 1
	}
	return p.Tile.Compare(o.Tile)
}

// Less reports whether p sorts before o.
func (p PlacedTile) Less(o PlacedTile) bool {
	return p.Compare(o) < 0
}

func (p PlacedTile) String() string {
	return fmt.Sprintf("%s@(%d,%d)", p.Tile, p.Row, p.Col)
}
