package service

import "context"

// RetrievedMovie is one hit from the retrieval microservice, scored by
// vector similarity.
type RetrievedMovie struct {
	TMDBID   int64   `json:"tmdbId"`
	Title    string  `json:"title"`
	Overview string  `json:"overview"`
	Score    float64 `json:"score"`
}

// NavigateResult is the retrieval service's routing decision for a
// natural-language navigation query: a frontend route plus optional
// parameters extracted from the phrase.
type NavigateResult struct {
	Route  string         `json:"route"`
	Params map[string]any `json:"params,omitempty"`
}

// Retriever is the client for the LLM retrieval microservice backing
// AI search and navigation.
type Retriever interface {
	// SearchMovies runs a semantic search over the movie collection.
	// An empty hit list is a valid result, not an error.
	SearchMovies(ctx context.Context, keyword, field string, limit int) ([]RetrievedMovie, error)

	// Navigate maps a natural-language phrase to a frontend route.
	Navigate(ctx context.Context, keyword string) (*NavigateResult, error)
}
