// Package remote implements the HTTP client for the portfolio persistence
// backend. Only portfolios are persisted remotely; all other collections
// live purely in the session store.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/SohamNaik26/wealth-management/internal/errors"
	"github.com/SohamNaik26/wealth-management/internal/model"
)

// Client performs portfolio CRUD calls against the remote backend.
// Every call injects the caller's bearer credential; the client does not
// interpret the credential beyond forwarding it.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// CreatePortfolio persists a new portfolio and returns the backend's
// representation of it.
func (c *Client) CreatePortfolio(ctx context.Context, token string, p model.Portfolio) (model.Portfolio, error) {
	return c.roundTrip(ctx, http.MethodPost, "/api/portfolios", token, p)
}

// UpdatePortfolio persists changes to an existing portfolio.
func (c *Client) UpdatePortfolio(ctx context.Context, token string, p model.Portfolio) (model.Portfolio, error) {
	return c.roundTrip(ctx, http.MethodPut, "/api/portfolios/"+p.ID, token, p)
}

// DeletePortfolio removes a portfolio from the backend.
func (c *Client) DeletePortfolio(ctx context.Context, token, portfolioID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/portfolios/"+portfolioID, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: delete returned %d", apperrors.ErrRemoteUnavailable, resp.StatusCode)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path, token string, p model.Portfolio) (model.Portfolio, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to encode portfolio: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("%w: %v", apperrors.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return model.Portfolio{}, fmt.Errorf("%w: %s returned %d: %s", apperrors.ErrRemoteUnavailable, path, resp.StatusCode, snippet)
	}

	var out model.Portfolio
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to decode backend response: %w", err)
	}
	return out, nil
}
