package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// ArticleFetcher lists the authenticated user's published articles
type ArticleFetcher struct {
	apiURL string
	apiKey string
	client *http.Client
}

// NewArticleFetcher creates a fetcher for the configured endpoint and credential
func NewArticleFetcher(settings *Settings, apiKey string) *ArticleFetcher {
	return &ArticleFetcher{
		apiURL: settings.APIURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: settings.Timeout()},
	}
}

// FetchPublished issues a single request and decodes the article list
func (f *ArticleFetcher) FetchPublished(ctx context.Context) ([]ArticleRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("api-key", f.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", f.apiURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: f.apiURL}
	}

	var articles []ArticleRecord
	if err := json.NewDecoder(resp.Body).Decode(&articles); err != nil {
		return nil, fmt.Errorf("decoding articles: %w", err)
	}

	return articles, nil
}
