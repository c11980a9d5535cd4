// Package bot runs the autonomous player: it polls the slobsterble service,
// finds games where it is the bot's move, generates candidate plays with the
// engine, and submits the highest-scoring legal one.
package bot

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/slobsterble/aiplayer/api"
	"github.com/slobsterble/aiplayer/config"
	"github.com/slobsterble/aiplayer/lexicon"
	"github.com/slobsterble/aiplayer/move"
	"github.com/slobsterble/aiplayer/movegen"
)

// GameService is the transport surface the bot depends on. *Client
// implements it; tests substitute a fake.
type GameService interface {
	ListGames(ctx context.Context) ([]api.GameInfo, error)
	GetGame(ctx context.Context, gameID string) (*api.GameState, error)
	SubmitPlay(ctx context.Context, gameID string, play []api.PlayTile) error
}

// ErrNoPlayableMove is returned for a turn where no candidate exists or
// every submission attempt was rejected. The game is reconsidered on the
// next poll cycle.
var ErrNoPlayableMove = errors.New("no playable move this cycle")

// Bot evaluates and plays turns. It holds only immutable state between
// cycles; board and rack are rebuilt from each polled snapshot.
type Bot struct {
	cfg     *config.Config
	service GameService
	lex     lexicon.Lexicon
}

func New(cfg *config.Config, service GameService, lex lexicon.Lexicon) *Bot {
	return &Bot{cfg: cfg, service: service, lex: lex}
}

// Run polls until the context is canceled. The first cycle runs right away;
// cycles never overlap, each one evaluates every active game to completion
// before the next begins.
func (b *Bot) Run(ctx context.Context) error {
	log.Info().
		Str("display-name", b.cfg.DisplayName).
		Dur("poll-interval", b.cfg.PollInterval).
		Msg("starting player")

	ticker := time.NewTicker(b.cfg.PollInterval)
	defer ticker.Stop()

	if err := b.PollOnce(ctx); err != nil {
		log.Warn().Err(err).Msg("poll cycle failed")
	}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("player shutting down")
			return ctx.Err()
		case <-ticker.C:
			if err := b.PollOnce(ctx); err != nil {
				log.Warn().Err(err).Msg("poll cycle failed")
			}
		}
	}
}

// PollOnce runs one full poll cycle over all active games.
func (b *Bot) PollOnce(ctx context.Context) error {
	games, err := b.service.ListGames(ctx)
	if err != nil {
		return err
	}
	// Matching on the display name is a known weakness of the games-list
	// API; the turn is confirmed against player ids after fetching the
	// full state.
	candidates := lo.Filter(games, func(g api.GameInfo, _ int) bool {
		return g.Active() && g.WhoseTurnName == b.cfg.DisplayName
	})
	log.Debug().Int("games", len(games)).Int("candidates", len(candidates)).
		Msg("polled games list")

	for _, game := range candidates {
		state, err := b.service.GetGame(ctx, game.ID)
		if err != nil {
			log.Error().Err(err).Str("game-id", game.ID).Msg("failed to fetch game state")
			continue
		}
		if !IsBotTurn(state) {
			continue
		}
		if err := b.PlayTurn(ctx, game.ID, state); err != nil {
			log.Warn().Err(err).Str("game-id", game.ID).Msg("turn not played")
		}
	}
	return nil
}

// IsBotTurn reports whether the snapshot's turn number points at the player
// that fetched it.
func IsBotTurn(state *api.GameState) bool {
	n := len(state.GamePlayers)
	if n == 0 {
		return false
	}
	turnOrder := state.TurnNumber % n
	player, found := lo.Find(state.GamePlayers, func(gp api.GamePlayer) bool {
		return gp.TurnOrder == turnOrder
	})
	if !found {
		return false
	}
	return player.Player.ID == state.FetcherPlayerID
}

// PlayTurn generates all candidate plays for the snapshot and submits the
// best one.
func (b *Bot) PlayTurn(ctx context.Context, gameID string, state *api.GameState) error {
	gameBoard, err := state.GameBoard()
	if err != nil {
		return err
	}
	rack := state.PlayerRack()
	if len(rack) == 0 {
		return ErrNoPlayableMove
	}

	gen := movegen.NewGenerator(gameBoard, b.lex)
	started := time.Now()
	plays, err := gen.GenAll(rack)
	if err != nil {
		return err
	}
	log.Info().
		Str("game-id", gameID).
		Str("rack", rack.String()).
		Int("candidates", len(plays)).
		Dur("elapsed", time.Since(started)).
		Msg("generated candidate plays")
	if len(plays) == 0 {
		return ErrNoPlayableMove
	}
	return b.submitBest(ctx, gameID, plays)
}

// submitBest tries the highest-scoring candidates in order, stopping at the
// first one the service accepts. Rejections move on to the next candidate;
// transport failures defer the whole turn to the next cycle.
func (b *Bot) submitBest(ctx context.Context, gameID string, plays []*move.Play) error {
	move.Sort(plays)
	attempts := b.cfg.MaxSubmitAttempts
	if attempts > len(plays) {
		attempts = len(plays)
	}
	for i := 0; i < attempts; i++ {
		play := plays[i]
		err := b.service.SubmitPlay(ctx, gameID, api.PlayTiles(play))
		if err == nil {
			log.Info().
				Str("game-id", gameID).
				Str("word", play.MainWord()).
				Int("score", play.Score).
				Msg("played move")
			if b.cfg.VerifyScores {
				b.verifyScore(ctx, gameID, play)
			}
			return nil
		}
		if errors.Is(err, ErrPlayRejected) {
			log.Warn().Err(err).
				Str("game-id", gameID).
				Str("word", play.MainWord()).
				Msg("submission rejected, trying next candidate")
			continue
		}
		return err
	}
	return ErrNoPlayableMove
}

// verifyScore re-fetches the game and compares the service's reported score
// for the move just played against the local computation. The move already
// happened; a mismatch is diagnostic, never rolled back.
func (b *Bot) verifyScore(ctx context.Context, gameID string, play *move.Play) {
	state, err := b.service.GetGame(ctx, gameID)
	if err != nil {
		log.Warn().Err(err).Str("game-id", gameID).Msg("could not fetch state for score verification")
		return
	}
	if state.PrevMove == nil {
		log.Warn().Str("game-id", gameID).Msg("no previous move reported, skipping score verification")
		return
	}
	if state.PrevMove.Score != play.Score {
		log.Warn().
			Str("game-id", gameID).
			Str("word", play.MainWord()).
			Int("local-score", play.Score).
			Int("reported-score", state.PrevMove.Score).
			Msg("score mismatch")
		return
	}
	log.Debug().Str("game-id", gameID).Int("score", play.Score).Msg("score verified")
}
