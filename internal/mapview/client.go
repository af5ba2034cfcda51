package mapview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client posts recenter commands to a Windy-style map service. The access
// key comes from configuration, never from source.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

type recenterCommand struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Zoom      int     `json:"zoom"`
}

// Recenter sends one recenter command. Any transport or status failure is
// reported as ErrUnavailable.
func (c *Client) Recenter(ctx context.Context, latitude, longitude float64, zoom int) error {
	payload, err := json.Marshal(recenterCommand{
		Latitude:  latitude,
		Longitude: longitude,
		Zoom:      zoom,
	})
	if err != nil {
		return fmt.Errorf("failed to encode recenter command: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/view", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("%w: recenter returned status %d", ErrUnavailable, resp.StatusCode)
	}

	return nil
}
