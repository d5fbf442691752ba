package rag

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinelog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Retrieval: &config.RetrievalConfig{
			BaseURL: server.URL,
			Timeout: time.Second,
		},
	}

	retriever, err := NewClient(cfg)
	require.NoError(t, err)

	return retriever.(*Client)
}

func TestClient_SearchMovies(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "movies", body["collection"])
		assert.Equal(t, "space opera", body["query"])
		assert.InDelta(t, 0.25, body["score_threshold"], 0.001)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"tmdb_id": 11, "title": "Star Wars", "score": 0.91},
			},
		})
	})

	hits, err := client.SearchMovies(context.Background(), "space opera", "", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, int64(11), hits[0].TMDBID)
	assert.Equal(t, "Star Wars", hits[0].Title)
}

func TestClient_SearchMoviesEmptyResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	})

	hits, err := client.SearchMovies(context.Background(), "nothing matches this", "", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestClient_Navigate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/navigate", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"route":  "/movie/11",
			"params": map[string]any{"movie_id": float64(11)},
		})
	})

	result, err := client.Navigate(context.Background(), "show me star wars")
	require.NoError(t, err)
	assert.Equal(t, "/movie/11", result.Route)
	assert.Equal(t, float64(11), result.Params["movie_id"])
}

func TestClient_UpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.SearchMovies(context.Background(), "anything", "", 10)
	assert.ErrorContains(t, err, "status 500")
}
