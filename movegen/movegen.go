// Package movegen exhaustively enumerates legal plays for one board and
// rack. The search is deliberately brute force: every empty start cell, both
// axes, every placement length, every tile subset and ordering, with blanks
// resolved up front. Rack sizes are small and the board is of modest fixed
// size, so completeness wins over asymptotic cleverness here.
package movegen

import (
	"github.com/rs/zerolog/log"

	"github.com/slobsterble/aiplayer/board"
	"github.com/slobsterble/aiplayer/lexicon"
	"github.com/slobsterble/aiplayer/move"
	"github.com/slobsterble/aiplayer/tiles"
)

var bothAxes = [2]board.Axis{board.Horizontal, board.Vertical}

// Generator enumerates candidate plays. It holds only read-only state and
// runs synchronously; a fresh board is supplied for every turn.
type Generator struct {
	board  *board.GameBoard
	lex    lexicon.Lexicon
	blanks BlankPolicy
}

func NewGenerator(b *board.GameBoard, lex lexicon.Lexicon) *Generator {
	return &Generator{board: b, lex: lex, blanks: DefaultBlankPolicy()}
}

// SetBlankPolicy overrides the blank-resolution bounds.
func (g *Generator) SetBlankPolicy(pol BlankPolicy) {
	g.blanks = pol
}

// GenAll returns every legal play for the rack, in no particular order.
func (g *Generator) GenAll(rack tiles.Rack) ([]*move.Play, error) {
	var plays []*move.Play
	err := g.Generate(rack, func(p *move.Play) bool {
		plays = append(plays, p)
		return true
	})
	if err != nil {
		return nil, err
	}
	return plays, nil
}

// Generate streams legal plays to emit as they are found. Returning false
// from emit stops the search early. Blank resolution runs to completion
// before any placement search starts.
func (g *Generator) Generate(rack tiles.Rack, emit func(*move.Play) bool) error {
	racks, err := expandRacks(rack, g.blanks)
	if err != nil {
		return err
	}
	if len(racks) > 1 {
		log.Debug().Int("racks", len(racks)).Int("blanks", rack.NumBlanks()).
			Msg("expanded blank tiles")
	}
	for _, resolved := range racks {
		if !g.generateForRack(resolved, emit) {
			return nil
		}
	}
	return nil
}

// generateForRack searches one fully lettered rack. Returns false if emit
// stopped the search.
func (g *Generator) generateForRack(rack tiles.Rack, emit func(*move.Play) bool) bool {
	rows, cols := g.board.Dims()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			occupied, err := g.board.IsOccupied(row, col)
			if err != nil || occupied {
				continue
			}
			for _, axis := range bothAxes {
				for length := 1; length <= len(rack); length++ {
					// Feasibility pre-check with the first tiles in rack
					// order: rejects starts where this many tiles cannot
					// physically fit.
					probe, err := g.board.BuildPlacement(row, col, rack[:length], axis)
					if err != nil {
						continue
					}
					// A play must touch an existing tile, or cover the
					// center cell on the opening move.
					if !g.board.IsConnected(probe) && !g.board.IsThroughCenter(probe) {
						continue
					}
					if !g.generateOrderings(row, col, rack, length, axis, emit) {
						return false
					}
				}
			}
		}
	}
	return true
}

// generateOrderings runs the combination/permutation enumeration for one
// (start cell, axis, length). Per-candidate failures abort only that
// candidate.
func (g *Generator) generateOrderings(row, col int, rack tiles.Rack, length int, axis board.Axis, emit func(*move.Play) bool) bool {
	selected := make([]tiles.Tile, length)
	for combo := FirstCombination(length); combo != nil; combo = NextCombination(combo, len(rack)) {
		for perm := FirstPermutation(length); perm != nil; perm = NextPermutation(perm) {
			for i, pi := range perm {
				selected[i] = rack[combo[pi]]
			}
			placement, err := g.board.BuildPlacement(row, col, selected, axis)
			if err != nil {
				continue
			}
			words, err := g.board.WordsFormed(placement)
			if err != nil {
				continue
			}
			if !g.allInLexicon(words) {
				continue
			}
			score, err := g.board.Score(placement)
			if err != nil {
				continue
			}
			if !emit(&move.Play{Tiles: placement, Words: words, Score: score}) {
				return false
			}
		}
	}
	return true
}

func (g *Generator) allInLexicon(words []string) bool {
	for _, w := range words {
		if !g.lex.HasWord(w) {
			return false
		}
	}
	return true
}
