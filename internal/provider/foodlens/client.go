// Package foodlens talks to the remote food lookup service: free-text
// product search and photo recognition, both returning per-100g
// candidate records.
package foodlens

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.foodlens.dev"
	maxResults     = 5
)

// Candidate is one lookup result. All nutrient values are per 100 g of
// product.
type Candidate struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories_per_100g"`
	ProteinG float64 `json:"protein_per_100g"`
	CarbsG   float64 `json:"carbs_per_100g"`
	FatG     float64 `json:"fat_per_100g"`
}

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

type searchResponse struct {
	Results []Candidate `json:"results"`
}

// Search looks up products matching a free-text query. It returns at
// most five candidates; an empty slice means nothing matched.
func (c *Client) Search(ctx context.Context, query string) ([]Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	u := fmt.Sprintf("%s/v1/search?q=%s&limit=%d", c.baseURL(), url.QueryEscape(query), maxResults)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create foodlens search request: %w", err)
	}
	return c.do(req)
}

// Recognize submits a captured image and returns the candidates the
// service identified in it, or an empty slice when it saw nothing.
func (c *Client) Recognize(ctx context.Context, image []byte) ([]Candidate, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("image data is required")
	}
	u := c.baseURL() + "/v1/recognize"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("create foodlens recognize request: %w", err)
	}
	req.Header.Set("Content-Type", "image/jpeg")
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]Candidate, error) {
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}
	req.Header.Set("User-Agent", "godx/1.0 (+https://github.com/Lodziarka/GOD-X)")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute foodlens request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read foodlens response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("foodlens request failed with status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode foodlens response: %w", err)
	}
	out := make([]Candidate, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		r.Name = strings.TrimSpace(r.Name)
		out = append(out, r)
		if len(out) == maxResults {
			break
		}
	}
	return out, nil
}

func (c *Client) baseURL() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return base
}
