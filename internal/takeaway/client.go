package takeaway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/lunchmates/restaurant-picker/internal/entity"
)

const (
	// DefaultBaseURL is the public Takeaway consumer-web API.
	DefaultBaseURL = "https://cw-api.takeaway.com"

	userAgent        = "Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0"
	listCacheEntries = 32
)

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Code int
	URL  string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("takeaway: unexpected status %d for %s", e.Code, e.URL)
}

// Lister fetches restaurant listings and details. Implemented by Client;
// declared so services can stub the upstream in tests.
type Lister interface {
	ListRestaurants(ctx context.Context, postalCode, limit int, isAccurate, showTestRestaurants bool) ([]entity.Restaurant, error)
	FetchRestaurant(ctx context.Context, slug string) (*RestaurantDetail, error)
}

// Client talks to the Takeaway listing and restaurant-detail endpoints.
type Client struct {
	client       *http.Client
	baseURL      string
	languageCode string
	countryCode  string
	listCache    *expirable.LRU[string, []entity.Restaurant]
}

// NewClient builds an upstream client. A nil http client gets a default with
// a 15s timeout. A zero cacheTTL disables the listing cache.
func NewClient(client *http.Client, baseURL, languageCode, countryCode string, cacheTTL time.Duration) *Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	var cache *expirable.LRU[string, []entity.Restaurant]
	if cacheTTL > 0 {
		cache = expirable.NewLRU[string, []entity.Restaurant](listCacheEntries, nil, cacheTTL)
	}

	return &Client{
		client:       client,
		baseURL:      baseURL,
		languageCode: languageCode,
		countryCode:  countryCode,
		listCache:    cache,
	}
}

// ListRestaurants fetches the restaurant listings for a postal code. Results
// are cached per URL for the configured TTL since listings move slowly.
func (c *Client) ListRestaurants(ctx context.Context, postalCode, limit int, isAccurate, showTestRestaurants bool) ([]entity.Restaurant, error) {
	url := fmt.Sprintf("%s/api/v33/restaurants?postalCode=%d&limit=%d&isAccurate=%t&filterShowTestRestaurants=%t",
		c.baseURL, postalCode, limit, isAccurate, showTestRestaurants)

	if c.listCache != nil {
		if cached, ok := c.listCache.Get(url); ok {
			return cached, nil
		}
	}

	var payload listResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	restaurants := make([]entity.Restaurant, 0, len(payload.Restaurants))
	for _, item := range payload.Restaurants {
		restaurants = append(restaurants, item.toEntity())
	}

	if c.listCache != nil {
		c.listCache.Add(url, restaurants)
	}
	return restaurants, nil
}

// FetchRestaurant fetches the detail record for a single listing slug.
func (c *Client) FetchRestaurant(ctx context.Context, slug string) (*RestaurantDetail, error) {
	url := fmt.Sprintf("%s/api/v33/restaurant?slug=%s", c.baseURL, slug)

	var payload detailResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return payload.toDetail(slug), nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Language-Code", c.languageCode)
	req.Header.Set("X-Country-Code", c.countryCode)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, URL: url}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode upstream response: %w", err)
	}
	return nil
}

var _ Lister = (*Client)(nil)
