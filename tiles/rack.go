package tiles

import (
	"errors"
	"strings"
)

// ErrBlankCount is returned by FillBlanks when the number of letters supplied
// does not match the number of unresolved blanks on the rack.
var ErrBlankCount = errors.New("letter count does not match blank count")

// Rack is the ordered multiset of tiles held by the acting player.
type Rack []Tile

// NumBlanks counts the unresolved blanks on the rack.
func (r Rack) NumBlanks() int {
	n := 0
	for _, t := range r {
		if !t.HasLetter() {
			n++
		}
	}
	return n
}

// FillBlanks returns a new rack in which each unresolved blank, in
// left-to-right order, is resolved to the corresponding letter. Non-blank
// tiles are untouched and stay in their original positions. The supplied
// letters must match the blank count exactly.
func (r Rack) FillBlanks(letters []rune) (Rack, error) {
	if len(letters) != r.NumBlanks() {
		return nil, ErrBlankCount
	}
	filled := make(Rack, len(r))
	li := 0
	for i, t := range r {
		if t.HasLetter() {
			filled[i] = t
			continue
		}
		filled[i] = t.WithLetter(letters[li])
		li++
	}
	return filled, nil
}

func (r Rack) String() string {
	var sb strings.Builder
	for _, t := range r {
		sb.WriteString(t.String())
	}
	return sb.String()
}
