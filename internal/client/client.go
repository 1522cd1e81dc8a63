// Package client is a typed HTTP client for the catalog API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vgm/internal/domain"
)

// ErrNotFound matches any 404 APIError.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response. Message is the server's {"error"} text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d message=%s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GameInput is the body for creating or replacing a game. Nil Status and
// Rating take the server defaults.
type GameInput struct {
	Name     string         `json:"name"`
	Year     int            `json:"year"`
	Platform int64          `json:"platform"`
	Genre    domain.Genre   `json:"genre"`
	Status   *domain.Status `json:"status,omitempty"`
	Rating   *int           `json:"rating"`
}

type PlatformInput struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

// ListGamesParams maps onto $filter and $search. Filter is sent verbatim,
// e.g. "platform eq 3".
type ListGamesParams struct {
	Filter string
	Search string
}

func (p ListGamesParams) values(expand bool) url.Values {
	v := url.Values{}
	if expand {
		v.Set("$expand", "platform")
	}
	if p.Filter != "" {
		v.Set("$filter", p.Filter)
	}
	if p.Search != "" {
		v.Set("$search", p.Search)
	}
	return v
}

func (c *Client) ListGames(ctx context.Context, p ListGamesParams) ([]domain.GameRaw, error) {
	var out struct {
		Games []domain.GameRaw `json:"games"`
	}
	err := c.do(ctx, http.MethodGet, "/api/games", p.values(false), nil, &out)
	return out.Games, err
}

func (c *Client) ListExpandedGames(ctx context.Context, p ListGamesParams) ([]domain.Game, error) {
	var out struct {
		Games []domain.Game `json:"games"`
	}
	err := c.do(ctx, http.MethodGet, "/api/games", p.values(true), nil, &out)
	return out.Games, err
}

func (c *Client) GetGame(ctx context.Context, id int64) (*domain.Game, error) {
	var out struct {
		Game domain.Game `json:"game"`
	}
	q := url.Values{"$expand": {"platform"}}
	if err := c.do(ctx, http.MethodGet, "/api/games/"+itoa(id), q, nil, &out); err != nil {
		return nil, err
	}
	return &out.Game, nil
}

func (c *Client) CreateGame(ctx context.Context, in GameInput) (int64, error) {
	var out struct {
		ID int64 `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/api/games", nil, in, &out)
	return out.ID, err
}

func (c *Client) UpdateGame(ctx context.Context, id int64, in GameInput) error {
	return c.do(ctx, http.MethodPut, "/api/games/"+itoa(id), nil, in, nil)
}

func (c *Client) DeleteGame(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/games/"+itoa(id), nil, nil, nil)
}

func (c *Client) ListPlatforms(ctx context.Context) ([]domain.Platform, error) {
	var out struct {
		Platforms []domain.Platform `json:"platforms"`
	}
	err := c.do(ctx, http.MethodGet, "/api/platforms", nil, nil, &out)
	return out.Platforms, err
}

func (c *Client) GetPlatform(ctx context.Context, id int64) (*domain.Platform, error) {
	var out struct {
		Platform domain.Platform `json:"platform"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/platforms/"+itoa(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Platform, nil
}

func (c *Client) CreatePlatform(ctx context.Context, in PlatformInput) (int64, error) {
	var out struct {
		ID int64 `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/api/platforms", nil, in, &out)
	return out.ID, err
}

func (c *Client) UpdatePlatform(ctx context.Context, id int64, in PlatformInput) error {
	return c.do(ctx, http.MethodPut, "/api/platforms/"+itoa(id), nil, in, nil)
}

func (c *Client) DeletePlatform(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/platforms/"+itoa(id), nil, nil, nil)
}

func (c *Client) PlatformGameCount(ctx context.Context, id int64) (int64, error) {
	var out struct {
		Count int64 `json:"count"`
	}
	err := c.do(ctx, http.MethodGet, "/api/platforms/"+itoa(id)+"/games/count", nil, nil, &out)
	return out.Count, err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var env struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error != "" {
			apiErr.Message = env.Error
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
