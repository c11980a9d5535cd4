package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/slobsterble/aiplayer/api"
)

// ErrPlayRejected is returned by SubmitPlay when the service turned the play
// down. Any other error is a transport failure.
var ErrPlayRejected = errors.New("play rejected by service")

const fetchAttempts = 3

// Client handles HTTP communication with the slobsterble service, including
// the access/refresh token lifecycle.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	tokens     api.TokenPair
}

// NewClient creates a client. No network traffic happens until the first
// call; tokens are obtained lazily and renewed shortly before they expire.
func NewClient(baseURL, username, password string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		password:   password,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// login obtains a fresh token pair with the configured credentials.
func (c *Client) login(ctx context.Context) error {
	creds := map[string]string{"username": c.username, "password": c.password}
	var pair api.TokenPair
	if err := c.doJSON(ctx, http.MethodPost, "/api/login", "", creds, &pair); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	c.tokens = pair
	log.Debug().Time("access-expires", c.tokens.AccessToken.ExpirationDate.Time).
		Msg("logged in")
	return nil
}

// refreshAccess trades the refresh token for a new access token.
func (c *Client) refreshAccess(ctx context.Context) error {
	var token api.Token
	err := c.doJSON(ctx, http.MethodPost, "/api/refresh-access",
		c.tokens.RefreshToken.Token, nil, &token)
	if err != nil {
		return fmt.Errorf("refresh access token: %w", err)
	}
	c.tokens.AccessToken = token
	return nil
}

// ensureAccess makes sure the access token is usable, re-authenticating or
// refreshing as needed.
func (c *Client) ensureAccess(ctx context.Context) error {
	if c.tokens.RefreshToken.AlmostExpired() {
		return c.login(ctx)
	}
	if c.tokens.AccessToken.AlmostExpired() {
		return c.refreshAccess(ctx)
	}
	return nil
}

// ListGames fetches the games list.
func (c *Client) ListGames(ctx context.Context) ([]api.GameInfo, error) {
	var games []api.GameInfo
	err := c.fetch(ctx, "/api/games", &games)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

// GetGame fetches the full snapshot for one game.
func (c *Client) GetGame(ctx context.Context, gameID string) (*api.GameState, error) {
	var state api.GameState
	err := c.fetch(ctx, "/api/game/"+gameID, &state)
	if err != nil {
		return nil, fmt.Errorf("get game %s: %w", gameID, err)
	}
	return &state, nil
}

// fetch is a GET with auth and a bounded retry for transient failures.
func (c *Client) fetch(ctx context.Context, path string, out any) error {
	return retry.Do(
		func() error {
			if err := c.ensureAccess(ctx); err != nil {
				return err
			}
			return c.doJSON(ctx, http.MethodGet, path, c.tokens.AccessToken.Token, nil, out)
		},
		retry.Context(ctx),
		retry.Attempts(fetchAttempts),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Uint("attempt", n).Str("path", path).Msg("fetch failed, retrying")
		}),
	)
}

// SubmitPlay submits the ordered placed tiles for one game. Submissions are
// never retried: a duplicated play is worse than a deferred turn.
func (c *Client) SubmitPlay(ctx context.Context, gameID string, play []api.PlayTile) error {
	if err := c.ensureAccess(ctx); err != nil {
		return err
	}
	err := c.doJSON(ctx, http.MethodPost, "/api/game/"+gameID,
		c.tokens.AccessToken.Token, play, nil)
	if err != nil {
		return fmt.Errorf("submit play for game %s: %w", gameID, err)
	}
	return nil
}

// doJSON performs one request. A 4xx on a play submission surfaces as
// ErrPlayRejected so callers can move on to the next candidate.
func (c *Client) doJSON(ctx context.Context, method, path, bearer string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(resp.Body)
		if method == http.MethodPost && resp.StatusCode >= 400 && resp.StatusCode < 500 &&
			strings.HasPrefix(path, "/api/game/") {
			return fmt.Errorf("%w: status %d: %s", ErrPlayRejected, resp.StatusCode, string(msg))
		}
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(msg))
	}
	if out == nil {
		return nil
	}
	decoded, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(decoded, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
