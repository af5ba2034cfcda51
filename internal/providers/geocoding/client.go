package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Mumbai&count=1&language=en&format=json
const baseSearchURL = "https://geocoding-api.open-meteo.com/v1/search"

// ErrUnexpectedStatus is returned when the geocoding API answers with a
// non-success HTTP status.
var ErrUnexpectedStatus = errors.New("geocoding fetch returned unexpected status")

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseSearchURL,
	}
}

// Search performs forward geocoding for a free-text place name.
func (c *Client) Search(ctx context.Context, name string) (*SearchAPIResponse, error) {
	q := url.Values{}
	q.Set("name", name)
	return c.get(ctx, q)
}

// ReverseSearch looks up the place nearest to a coordinate pair.
func (c *Client) ReverseSearch(ctx context.Context, latitude, longitude float64) (*SearchAPIResponse, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	return c.get(ctx, q)
}

func (c *Client) get(ctx context.Context, q url.Values) (*SearchAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q.Set("count", "1")
	q.Set("language", "en")
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}

	var apiResp SearchAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
