// Package rag implements the client for the LLM retrieval microservice.
package rag

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"cinelog/config"
	"cinelog/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultTimeout        = 15 * time.Second
	defaultCollection     = "movies"
	defaultScoreThreshold = 0.25
)

// Client calls the retrieval microservice over HTTP. It implements
// service.Retriever.
type Client struct {
	baseURL        string
	collection     string
	scoreThreshold float64
	httpClient     *http.Client
}

// NewClient builds a retrieval client from configuration.
func NewClient(cfg *config.Config) (service.Retriever, error) {
	if cfg.Retrieval == nil || cfg.Retrieval.BaseURL == "" {
		return nil, errors.New("retrieval base url must be provided")
	}

	timeout := cfg.Retrieval.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	collection := cfg.Retrieval.Collection
	if collection == "" {
		collection = defaultCollection
	}
	threshold := cfg.Retrieval.ScoreThreshold
	if threshold <= 0 {
		threshold = defaultScoreThreshold
	}

	return &Client{
		baseURL:        cfg.Retrieval.BaseURL,
		collection:     collection,
		scoreThreshold: threshold,
		httpClient:     &http.Client{Timeout: timeout},
	}, nil
}

// SearchMovies runs a semantic search over the movie collection.
func (c *Client) SearchMovies(ctx context.Context, keyword, field string, limit int) ([]service.RetrievedMovie, error) {
	request := map[string]any{
		"query":           keyword,
		"collection":      c.collection,
		"limit":           limit,
		"score_threshold": c.scoreThreshold,
	}
	if field != "" {
		request["field"] = field
	}

	var payload struct {
		Results []struct {
			TMDBID   int64   `json:"tmdb_id"`
			Title    string  `json:"title"`
			Overview string  `json:"overview"`
			Score    float64 `json:"score"`
		} `json:"results"`
	}

	if err := c.post(ctx, "/search", request, &payload); err != nil {
		return nil, err
	}

	hits := make([]service.RetrievedMovie, 0, len(payload.Results))
	for _, r := range payload.Results {
		hits = append(hits, service.RetrievedMovie{
			TMDBID:   r.TMDBID,
			Title:    r.Title,
			Overview: r.Overview,
			Score:    r.Score,
		})
	}

	return hits, nil
}

// Navigate maps a natural-language phrase to a frontend route.
func (c *Client) Navigate(ctx context.Context, keyword string) (*service.NavigateResult, error) {
	request := map[string]any{"query": keyword}

	var payload struct {
		Route  string         `json:"route"`
		Params map[string]any `json:"params"`
	}

	if err := c.post(ctx, "/navigate", request, &payload); err != nil {
		return nil, err
	}
	if payload.Route == "" {
		return nil, errors.New("retrieval service returned no route")
	}

	return &service.NavigateResult{
		Route:  payload.Route,
		Params: payload.Params,
	}, nil
}

// post sends one JSON request to the retrieval service and decodes the
// response body into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to encode retrieval request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return errors.Wrap(err, "failed to create retrieval request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "retrieval request %s failed", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)

		return errors.Errorf("retrieval request %s failed with status %d: %s", path, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode retrieval response for %s", path)
	}

	return nil
}
