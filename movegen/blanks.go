package movegen

import (
	"errors"
	"fmt"

	"github.com/slobsterble/aiplayer/tiles"
)

// BlankPolicy bounds the blank-resolution search. Up to MaxExhaustive blanks
// are tried against the whole alphabet; any blanks beyond that are pre-filled
// from the Prefill letters, cycling when there are more extra blanks than
// letters.
type BlankPolicy struct {
	MaxExhaustive int
	Prefill       []rune
}

// DefaultBlankPolicy searches the last two blanks exhaustively and pre-fills
// the rest with common letters. Two exhaustive blanks cost 676 racks; each
// further one would multiply that by 26 for very little scoring upside.
func DefaultBlankPolicy() BlankPolicy {
	return BlankPolicy{MaxExhaustive: 2, Prefill: []rune{'E', 'A', 'R', 'S', 'T'}}
}

var errNoPrefill = errors.New("blank policy has no prefill letters")

// expandRacks resolves every unresolved blank on the rack, returning one
// fully lettered rack per letter assignment. A rack without blanks comes back
// unchanged as the only element.
func expandRacks(rack tiles.Rack, pol BlankPolicy) ([]tiles.Rack, error) {
	numBlanks := rack.NumBlanks()
	if numBlanks == 0 {
		return []tiles.Rack{rack}, nil
	}

	prefilled := numBlanks - pol.MaxExhaustive
	if prefilled < 0 {
		prefilled = 0
	}
	if prefilled > 0 && len(pol.Prefill) == 0 {
		return nil, errNoPrefill
	}

	// Assignments are grown one blank at a time: pre-filled blanks extend
	// every partial assignment by a single letter, exhaustive blanks fan each
	// one out across the alphabet.
	assignments := [][]rune{{}}
	for i := 0; i < numBlanks; i++ {
		var grown [][]rune
		if i < prefilled {
			letter := pol.Prefill[i%len(pol.Prefill)]
			for _, a := range assignments {
				grown = append(grown, append(append([]rune{}, a...), letter))
			}
		} else {
			for _, a := range assignments {
				for letter := 'A'; letter <= 'Z'; letter++ {
					grown = append(grown, append(append([]rune{}, a...), letter))
				}
			}
		}
		assignments = grown
	}

	racks := make([]tiles.Rack, 0, len(assignments))
	for _, letters := range assignments {
		filled, err := rack.FillBlanks(letters)
		if err != nil {
			return nil, fmt.Errorf("fill blanks: %w", err)
		}
		racks = append(racks, filled)
	}
	return racks, nil
}
