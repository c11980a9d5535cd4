// Package move defines a candidate play: a fully resolved, dictionary-valid
// placement together with the words it forms and its computed score.
package move

import (
	"fmt"
	"sort"
	"strings"

	"github.com/slobsterble/aiplayer/tiles"
)

// Play is one candidate placement. The tiles share a single axis and are in
// the order they were laid by the placement builder.
type Play struct {
	Tiles []tiles.PlacedTile
	Words []string
	Score int
}

// TilesPlayed returns the number of newly placed tiles.
func (p *Play) TilesPlayed() int {
	return len(p.Tiles)
}

// MainWord returns the primary word formed, or "" for an empty play.
func (p *Play) MainWord() string {
	if len(p.Words) == 0 {
		return ""
	}
	return p.Words[0]
}

func (p *Play) String() string {
	if len(p.Tiles) == 0 {
		return "<empty play>"
	}
	placed := make([]string, len(p.Tiles))
	for i, pt := range p.Tiles {
		placed[i] = pt.String()
	}
	return fmt.Sprintf("<%s %s score: %d>", p.MainWord(), strings.Join(placed, " "), p.Score)
}

// Sort orders plays by score descending. The sort is stable so that ties
// keep their generation order.
func Sort(plays []*Play) {
	sort.SliceStable(plays, func(i, j int) bool {
		return plays[i].Score > plays[j].Score
	})
}
