// Package api defines the JSON types exchanged with the slobsterble
// service, and the conversion from a fetched game snapshot to the engine's
// board and rack models.
package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Timestamp unmarshals the service's seconds-since-epoch timestamps, which
// may arrive as a JSON number or as a numeric string.
type Timestamp struct {
	time.Time
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		var err error
		s, err = strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("parse timestamp %s: %w", string(data), err)
		}
	}
	if s == "null" {
		return nil
	}
	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse timestamp %s: %w", string(data), err)
	}
	ts.Time = time.Unix(int64(seconds), 0).UTC()
	return nil
}

// GameInfo is one entry of the games list.
type GameInfo struct {
	ID            string     `json:"id"`
	Started       Timestamp  `json:"started"`
	Completed     *Timestamp `json:"completed"`
	WhoseTurnName string     `json:"whose_turn_name"`
}

// Active reports whether the game has not completed yet.
func (g *GameInfo) Active() bool {
	return g.Completed == nil
}

// Tile is the wire form of a single tile. Letter is null for an unresolved
// blank.
type Tile struct {
	Letter  *string `json:"letter"`
	IsBlank bool    `json:"is_blank"`
	Value   int     `json:"value"`
}

// PlayedTile is a tile fixed on the board by a prior turn.
type PlayedTile struct {
	Tile   Tile `json:"tile"`
	Row    int  `json:"row"`
	Column int  `json:"column"`
}

// TileCount is one run-length group of the player's rack.
type TileCount struct {
	Tile  Tile `json:"tile"`
	Count int  `json:"count"`
}

// Modifier is the wire form of a cell's multiplier pair.
type Modifier struct {
	WordMultiplier   int `json:"word_multiplier"`
	LetterMultiplier int `json:"letter_multiplier"`
}

// PositionedModifier attaches a modifier to a board cell.
type PositionedModifier struct {
	Row      int      `json:"row"`
	Column   int      `json:"column"`
	Modifier Modifier `json:"modifier"`
}

// BoardLayout carries the board dimensions and the sparse modifier list;
// positions not listed default to unit multipliers.
type BoardLayout struct {
	Rows      int                  `json:"rows"`
	Columns   int                  `json:"columns"`
	Modifiers []PositionedModifier `json:"modifiers"`
}

// Player identifies a player in a game.
type Player struct {
	ID          int    `json:"id"`
	DisplayName string `json:"display_name"`
}

// GamePlayer is a player's per-game record.
type GamePlayer struct {
	Score             int    `json:"score"`
	TurnOrder         int    `json:"turn_order"`
	Player            Player `json:"player"`
	NumTilesRemaining int    `json:"num_tiles_remaining"`
}

// PrevMove describes the most recent move in a game.
type PrevMove struct {
	Word           *string `json:"word"`
	Score          int     `json:"score"`
	PlayerID       int     `json:"player_id"`
	DisplayName    string  `json:"display_name"`
	ExchangedCount int     `json:"exchanged_count"`
}

// GameState is the full snapshot fetched for one game.
type GameState struct {
	BoardState        []PlayedTile `json:"board_state"`
	GamePlayers       []GamePlayer `json:"game_players"`
	BoardLayout       BoardLayout  `json:"board_layout"`
	TurnNumber        int          `json:"turn_number"`
	WhoseTurnName     string       `json:"whose_turn_name"`
	NumTilesRemaining int          `json:"num_tiles_remaining"`
	Rack              []TileCount  `json:"rack"`
	PrevMove          *PrevMove    `json:"prev_move"`
	FetcherPlayerID   int          `json:"fetcher_player_id"`
}

// PlayTile is one entry of a submitted play, one per newly placed tile, in
// placement order.
type PlayTile struct {
	Row        int    `json:"row"`
	Column     int    `json:"column"`
	Letter     string `json:"letter"`
	IsBlank    bool   `json:"is_blank"`
	Value      int    `json:"value"`
	IsExchange bool   `json:"is_exchange"`
}

// Token is a bearer token with its expiration time.
type Token struct {
	Token          string    `json:"token"`
	ExpirationDate Timestamp `json:"expiration_date"`
}

// almostExpiredThreshold pads expiry checks so a token is renewed slightly
// before the service would reject it.
const almostExpiredThreshold = 20 * time.Second

// Expired reports whether the token's expiration time has passed.
func (t Token) Expired() bool {
	return t.ExpirationDate.Before(time.Now())
}

// AlmostExpired reports whether the token expires within the renewal
// threshold.
func (t Token) AlmostExpired() bool {
	return t.ExpirationDate.Before(time.Now().Add(almostExpiredThreshold))
}

// TokenPair is the access/refresh token pair returned by login.
type TokenPair struct {
	AccessToken  Token `json:"access_token"`
	RefreshToken Token `json:"refresh_token"`
}

// MarshalJSON keeps Timestamp symmetric for tests and fixtures.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(ts.Unix(), 10))
}
