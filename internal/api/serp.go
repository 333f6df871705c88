package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yt-prospector/internal/models"
	"github.com/yt-prospector/pkg/httpclient"
	"golang.org/x/time/rate"
)

const serpAPIBaseURL = "https://serpapi.com/search.json"

// SerpClient issues free-text Google searches through SerpAPI.
type SerpClient struct {
	apiKey  string
	baseURL string
	client  *httpclient.Client
	limiter *rate.Limiter
}

// NewSerpClient creates a new SerpAPI client. The limiter spaces out calls to
// stay inside the plan quota; pass nil to disable limiting.
func NewSerpClient(apiKey string, client *httpclient.Client, limiter *rate.Limiter) *SerpClient {
	return &SerpClient{
		apiKey:  apiKey,
		baseURL: serpAPIBaseURL,
		client:  client,
		limiter: limiter,
	}
}

type serpResponse struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic_results"`
}

// Query runs one web search and returns the organic results in rank order.
func (c *SerpClient) Query(ctx context.Context, text string) ([]models.SearchResult, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", text)
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("searching for %q: %w", text, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("SerpAPI returned status code: %d", resp.StatusCode)
	}

	var payload serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := make([]models.SearchResult, 0, len(payload.OrganicResults))
	for _, r := range payload.OrganicResults {
		results = append(results, models.SearchResult{
			Title:   r.Title,
			Link:    r.Link,
			Snippet: r.Snippet,
		})
	}
	return results, nil
}
