package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slobsterble/aiplayer/api"
	"github.com/slobsterble/aiplayer/config"
	"github.com/slobsterble/aiplayer/lexicon"
	"github.com/slobsterble/aiplayer/move"
	"github.com/slobsterble/aiplayer/tiles"
)

// fakeService is an in-memory GameService. Submission outcomes are consumed
// from submitResults in order; once exhausted, submissions are accepted.
type fakeService struct {
	games         []api.GameInfo
	states        map[string]*api.GameState
	listCalls     int
	onList        func()
	getCalls      int
	submits       [][]api.PlayTile
	submitResults []error
}

func (s *fakeService) ListGames(context.Context) ([]api.GameInfo, error) {
	s.listCalls++
	if s.onList != nil {
		s.onList()
	}
	return s.games, nil
}

func (s *fakeService) GetGame(_ context.Context, gameID string) (*api.GameState, error) {
	s.getCalls++
	state, ok := s.states[gameID]
	if !ok {
		return nil, fmt.Errorf("no such game %s", gameID)
	}
	return state, nil
}

func (s *fakeService) SubmitPlay(_ context.Context, _ string, play []api.PlayTile) error {
	s.submits = append(s.submits, play)
	if len(s.submitResults) == 0 {
		return nil
	}
	err := s.submitResults[0]
	s.submitResults = s.submitResults[1:]
	return err
}

func testConfig() *config.Config {
	return &config.Config{
		DisplayName:       "robot",
		MaxSubmitAttempts: 10,
	}
}

func strptr(s string) *string { return &s }

func mkPlay(score int, word string, placed ...tiles.PlacedTile) *move.Play {
	return &move.Play{Tiles: placed, Words: []string{word}, Score: score}
}

func TestIsBotTurn(t *testing.T) {
	players := []api.GamePlayer{
		{TurnOrder: 0, Player: api.Player{ID: 11}},
		{TurnOrder: 1, Player: api.Player{ID: 22}},
		{TurnOrder: 2, Player: api.Player{ID: 33}},
	}

	cases := []struct {
		name       string
		turnNumber int
		fetcherID  int
		want       bool
	}{
		{"first player's opening turn", 0, 11, true},
		{"second player's opening turn", 1, 22, true},
		{"wraps around the table", 7, 22, true},
		{"someone else's turn", 4, 33, false},
		{"fetcher not in game", 0, 99, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := &api.GameState{
				GamePlayers:     players,
				TurnNumber:      tc.turnNumber,
				FetcherPlayerID: tc.fetcherID,
			}
			assert.Equal(t, tc.want, IsBotTurn(state))
		})
	}

	t.Run("no players", func(t *testing.T) {
		assert.False(t, IsBotTurn(&api.GameState{TurnNumber: 0}))
	})
}

func TestRunPollsImmediately(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	service := &fakeService{onList: cancel}
	cfg := testConfig()
	cfg.PollInterval = time.Hour

	b := New(cfg, service, lexicon.AcceptAll{})
	err := b.Run(ctx)
	is.True(errors.Is(err, context.Canceled))
	// The first cycle ran without waiting out a ticker interval.
	is.Equal(service.listCalls, 1)
}

func TestPollOnceFetchesOnlyCandidateGames(t *testing.T) {
	is := is.New(t)
	done := api.Timestamp{}
	service := &fakeService{
		games: []api.GameInfo{
			{ID: "finished", Completed: &done, WhoseTurnName: "robot"},
			{ID: "not-ours", WhoseTurnName: "opponent"},
			{ID: "ours", WhoseTurnName: "robot"},
		},
		states: map[string]*api.GameState{
			// Snapshot disagrees with the list: it is not the bot's turn
			// after all, so nothing is submitted.
			"ours": {
				GamePlayers: []api.GamePlayer{
					{TurnOrder: 0, Player: api.Player{ID: 1}},
					{TurnOrder: 1, Player: api.Player{ID: 2}},
				},
				TurnNumber:      1,
				FetcherPlayerID: 1,
			},
		},
	}
	b := New(testConfig(), service, lexicon.AcceptAll{})

	err := b.PollOnce(context.Background())
	is.NoErr(err)
	is.Equal(service.getCalls, 1)
	is.Equal(len(service.submits), 0)
}

func TestPlayTurnSubmitsBestPlay(t *testing.T) {
	is := is.New(t)
	dict, err := lexicon.FromReader("test", strings.NewReader("AT\n"))
	require.NoError(t, err)

	state := &api.GameState{
		BoardLayout: api.BoardLayout{Rows: 5, Columns: 5},
		Rack: []api.TileCount{
			{Tile: api.Tile{Letter: strptr("A"), Value: 1}, Count: 1},
			{Tile: api.Tile{Letter: strptr("T"), Value: 1}, Count: 1},
		},
	}
	service := &fakeService{}
	b := New(testConfig(), service, dict)

	err = b.PlayTurn(context.Background(), "g1", state)
	is.NoErr(err)
	require.Len(t, service.submits, 1)

	submitted := service.submits[0]
	require.Len(t, submitted, 2)
	is.Equal(submitted[0].Letter+submitted[1].Letter, "AT")
	for _, pt := range submitted {
		is.True(!pt.IsExchange)
		is.True(pt.Row >= 0 && pt.Row < 5)
		is.True(pt.Column >= 0 && pt.Column < 5)
	}
}

func TestPlayTurnEmptyRack(t *testing.T) {
	service := &fakeService{}
	b := New(testConfig(), service, lexicon.AcceptAll{})

	state := &api.GameState{BoardLayout: api.BoardLayout{Rows: 5, Columns: 5}}
	err := b.PlayTurn(context.Background(), "g1", state)
	assert.ErrorIs(t, err, ErrNoPlayableMove)
	assert.Empty(t, service.submits)
}

func TestSubmitBestTriesNextCandidateOnRejection(t *testing.T) {
	is := is.New(t)
	service := &fakeService{
		submitResults: []error{ErrPlayRejected},
	}
	b := New(testConfig(), service, lexicon.AcceptAll{})

	plays := []*move.Play{
		mkPlay(10, "LOW"),
		mkPlay(30, "HIGH", tiles.PlacedTile{Row: 1, Col: 1}),
		mkPlay(20, "MID"),
	}
	err := b.submitBest(context.Background(), "g1", plays)
	is.NoErr(err)
	// HIGH was rejected, MID accepted, LOW never attempted.
	is.Equal(len(service.submits), 2)
}

func TestSubmitBestCapsAttempts(t *testing.T) {
	is := is.New(t)
	var results []error
	var plays []*move.Play
	for i := 0; i < 15; i++ {
		results = append(results, ErrPlayRejected)
		plays = append(plays, mkPlay(i, "WORD"))
	}
	service := &fakeService{submitResults: results}
	b := New(testConfig(), service, lexicon.AcceptAll{})

	err := b.submitBest(context.Background(), "g1", plays)
	is.True(errors.Is(err, ErrNoPlayableMove))
	is.Equal(len(service.submits), 10)
}

func TestSubmitBestDefersOnTransportFailure(t *testing.T) {
	is := is.New(t)
	transportErr := errors.New("connection reset")
	service := &fakeService{submitResults: []error{transportErr}}
	b := New(testConfig(), service, lexicon.AcceptAll{})

	err := b.submitBest(context.Background(), "g1", []*move.Play{
		mkPlay(10, "ONE"),
		mkPlay(5, "TWO"),
	})
	is.True(errors.Is(err, transportErr))
	// The turn is deferred, not handed to the next candidate.
	is.Equal(len(service.submits), 1)
}

func TestSubmitBestVerifiesScoreWhenConfigured(t *testing.T) {
	is := is.New(t)
	service := &fakeService{
		states: map[string]*api.GameState{
			"g1": {PrevMove: &api.PrevMove{Word: strptr("WORD"), Score: 42}},
		},
	}
	cfg := testConfig()
	cfg.VerifyScores = true
	b := New(cfg, service, lexicon.AcceptAll{})

	err := b.submitBest(context.Background(), "g1", []*move.Play{mkPlay(42, "WORD")})
	is.NoErr(err)
	is.Equal(len(service.submits), 1)
	is.Equal(service.getCalls, 1)
}
