package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/nhl-query-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-query-service/internal/providers"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Config controls how the client reaches the upstream league API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches team statistics and game scores from the league web API.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchTeamStats returns the season statistics document for a team unchanged.
func (c *Client) FetchTeamStats(ctx context.Context, team string, season int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("season", strconv.Itoa(season))
	body, err := c.get(ctx, endpointTeamStats, url.PathEscape(team), q)
	if err != nil {
		return nil, err
	}
	if !jsonAPI.Valid(body) {
		return nil, &providers.UpstreamError{
			Provider:   providerName,
			Endpoint:   endpointTeamStats,
			StatusCode: http.StatusOK,
			Err:        fmt.Errorf("response is not valid JSON: %w", providers.ErrMalformedPayload),
		}
	}
	return body, nil
}

// FetchGameScore returns the score block and game state for a game.
// A payload without a score yields providers.ErrNotFound.
func (c *Client) FetchGameScore(ctx context.Context, gameID string) (games.Score, error) {
	body, err := c.get(ctx, endpointScore, url.PathEscape(gameID), nil)
	if err != nil {
		return games.Score{}, err
	}

	var payload scoreResponse
	if err := jsonAPI.Unmarshal(body, &payload); err != nil {
		return games.Score{}, fmt.Errorf("%s %s: decode: %w", providerName, endpointScore, providers.ErrNotFound)
	}
	if !payload.present() {
		return games.Score{}, fmt.Errorf("%s %s %s: score missing: %w", providerName, endpointScore, gameID, providers.ErrNotFound)
	}
	return games.Score{Score: payload.Score, Status: payload.GameState}, nil
}

func (c *Client) get(ctx context.Context, endpoint, id string, query url.Values) ([]byte, error) {
	target := c.baseURL + "/" + endpoint + "/" + id
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.UpstreamError{Provider: providerName, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		cause := fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(snippet)))
		if resp.StatusCode == http.StatusTooManyRequests {
			cause = &providers.RateLimitError{
				Provider:   providerName,
				StatusCode: resp.StatusCode,
				RetryAfter: parseRetryAfter(resp.Header),
				Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
				Message:    "upstream rate limited",
			}
		}
		return nil, &providers.UpstreamError{
			Provider:   providerName,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        cause,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &providers.UpstreamError{Provider: providerName, Endpoint: endpoint, Err: err}
	}
	return body, nil
}
