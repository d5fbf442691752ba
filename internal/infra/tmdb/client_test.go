package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinelog/config"
	"cinelog/internal/domain/service"
	"cinelog/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) service.MetadataProvider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		TMDB: &config.TMDBConfig{
			BaseURL: server.URL,
			APIKey:  "test-key",
			Timeout: time.Second,
		},
	}

	provider, err := NewClient(cfg, metrics.New())
	require.NoError(t, err)

	return provider
}

func TestClient_TrendingMovies(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trending/movie/day", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{
					"id":           603,
					"title":        "The Matrix",
					"vote_average": 8.2,
					"genre_ids":    []int64{28, 878},
				},
			},
		})
	})

	movies, err := provider.TrendingMovies(context.Background(), service.TrendingToday)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, int64(603), movies[0].TMDBID)
	assert.Equal(t, "The Matrix", movies[0].Title)
	assert.Equal(t, []int64{28, 878}, movies[0].GenreIDs)
}

func TestClient_MovieGenres(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/genre/movie/list", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"genres": []map[string]any{
				{"id": 28, "name": "Action"},
				{"id": 878, "name": "Science Fiction"},
			},
		})
	})

	genres, err := provider.MovieGenres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Action", genres[28])
	assert.Equal(t, "Science Fiction", genres[878])
}

func TestClient_ProviderError(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"status_message":"Invalid API key"}`, http.StatusUnauthorized)
	})

	_, err := provider.PopularMovies(context.Background(), 1)
	assert.ErrorContains(t, err, "status 401")
}

func TestClient_MissingAPIKey(t *testing.T) {
	provider, err := NewClient(&config.Config{}, metrics.New())
	assert.Nil(t, provider)
	assert.ErrorContains(t, err, "tmdb api key must be provided")
}
