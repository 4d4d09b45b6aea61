package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"menuboard/internal/model"

	"github.com/rs/zerolog"
)

// MenuAPI is the surface of the menu service the client depends on.
type MenuAPI interface {
	// List retrieves every menu item.
	List(ctx context.Context) ([]model.MenuItem, error)

	// GetPrice retrieves the current price of a single item. Returns
	// model.ErrMenuItemNotFound when the service reports no match.
	GetPrice(ctx context.Context, id int64) (string, error)

	// UpdatePrice submits a new price for a single item.
	UpdatePrice(ctx context.Context, id int64, price string) error
}

// Client is an HTTP implementation of MenuAPI.
type Client struct {
	baseURL    string
	prefix     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a new menu API client. baseURL is the server origin
// (e.g. "http://localhost:4000") and prefix the route prefix the server
// was configured with.
func New(baseURL, prefix string, logger zerolog.Logger) *Client {
	if prefix == "" {
		prefix = "/api/menu"
	}
	return &Client{
		baseURL: baseURL,
		prefix:  prefix,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger.With().Str("component", "menu-client").Logger(),
	}
}

// List retrieves every menu item.
func (c *Client) List(ctx context.Context) ([]model.MenuItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.prefix, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create list request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to fetch menu items")
		return nil, fmt.Errorf("failed to fetch menu items: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().Int("status", resp.StatusCode).Msg("unexpected status listing menu items")
		return nil, fmt.Errorf("unexpected status listing menu items: %d", resp.StatusCode)
	}

	var items []model.MenuItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}

	return items, nil
}

// GetPrice retrieves the current price of a single item.
func (c *Client) GetPrice(ctx context.Context, id int64) (string, error) {
	url := fmt.Sprintf("%s%s/%d", c.baseURL, c.prefix, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create price request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Int64("menu_id", id).Msg("failed to fetch price")
		return "", fmt.Errorf("failed to fetch price for item %d: %w", id, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var body model.PriceResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return "", fmt.Errorf("failed to decode price response: %w", err)
		}
		return body.Price, nil
	case http.StatusNotFound:
		return "", model.ErrMenuItemNotFound
	default:
		c.logger.Error().Int("status", resp.StatusCode).Int64("menu_id", id).Msg("unexpected status fetching price")
		return "", fmt.Errorf("unexpected status fetching price: %d", resp.StatusCode)
	}
}

// UpdatePrice submits a new price for a single item.
func (c *Client) UpdatePrice(ctx context.Context, id int64, price string) error {
	payload, err := json.Marshal(model.UpdatePriceRequest{Price: price})
	if err != nil {
		return fmt.Errorf("failed to encode price update: %w", err)
	}

	url := fmt.Sprintf("%s%s/%d", c.baseURL, c.prefix, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Int64("menu_id", id).Msg("failed to submit price update")
		return fmt.Errorf("failed to submit price update for item %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().Int("status", resp.StatusCode).Int64("menu_id", id).Msg("unexpected status updating price")
		return fmt.Errorf("unexpected status updating price: %d", resp.StatusCode)
	}

	return nil
}
