package api

import (
	"fmt"

	"github.com/slobsterble/aiplayer/board"
	"github.com/slobsterble/aiplayer/move"
	"github.com/slobsterble/aiplayer/tiles"
)

// engineTile converts a wire tile. A null letter stays unresolved.
func engineTile(t Tile) tiles.Tile {
	letter := tiles.NoLetter
	if t.Letter != nil && *t.Letter != "" {
		letter = []rune(*t.Letter)[0]
	}
	return tiles.Tile{Letter: letter, Value: t.Value, Blank: t.IsBlank}
}

// GameBoard builds the engine board from the snapshot: dimensions and sparse
// modifiers from the layout, fixed tiles from the board state.
func (gs *GameState) GameBoard() (*board.GameBoard, error) {
	g, err := board.New(gs.BoardLayout.Rows, gs.BoardLayout.Columns)
	if err != nil {
		return nil, fmt.Errorf("board layout: %w", err)
	}
	for _, pm := range gs.BoardLayout.Modifiers {
		m := board.Modifier{
			LetterMultiplier: pm.Modifier.LetterMultiplier,
			WordMultiplier:   pm.Modifier.WordMultiplier,
		}
		if err := g.SetModifier(pm.Row, pm.Column, m); err != nil {
			return nil, err
		}
	}
	for _, pt := range gs.BoardState {
		if err := g.SetFixedTile(pt.Row, pt.Column, engineTile(pt.Tile)); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// PlayerRack expands the snapshot's run-length rack groups into the engine
// rack.
func (gs *GameState) PlayerRack() tiles.Rack {
	var rack tiles.Rack
	for _, tc := range gs.Rack {
		t := engineTile(tc.Tile)
		for i := 0; i < tc.Count; i++ {
			rack = append(rack, t)
		}
	}
	return rack
}

// PlayTiles converts a candidate play to the wire form expected by the
// submission endpoint, preserving placement order.
func PlayTiles(p *move.Play) []PlayTile {
	out := make([]PlayTile, len(p.Tiles))
	for i, pt := range p.Tiles {
		out[i] = PlayTile{
			Row:        pt.Row,
			Column:     pt.Col,
			Letter:     string(pt.Tile.Letter),
			IsBlank:    pt.Tile.Blank,
			Value:      pt.Tile.Value,
			IsExchange: false,
		}
	}
	return out
}
