// Package tmdb implements the metadata provider client against the
// TMDB v3 HTTP API.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"cinelog/config"
	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/service"
	"cinelog/internal/infra/metrics"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	defaultTimeout = 10 * time.Second
)

// Client calls the TMDB HTTP API. It implements service.MetadataProvider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// NewClient builds a TMDB client from configuration.
func NewClient(cfg *config.Config, m *metrics.Metrics) (service.MetadataProvider, error) {
	if cfg.TMDB == nil || cfg.TMDB.APIKey == "" {
		return nil, errors.New("tmdb api key must be provided")
	}

	baseURL := cfg.TMDB.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.TMDB.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.TMDB.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
	}, nil
}

type providerMovieDTO struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int64   `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
	GenreIDs     []int64 `json:"genre_ids"`
}

type movieListDTO struct {
	Results []providerMovieDTO `json:"results"`
}

// TrendingMovies lists movies trending in the given window.
func (c *Client) TrendingMovies(ctx context.Context, window service.TrendingWindow) ([]service.ProviderMovie, error) {
	var list movieListDTO
	path := fmt.Sprintf("/trending/movie/%s", window)
	if err := c.get(ctx, path, nil, &list); err != nil {
		return nil, err
	}

	return toProviderMovies(list.Results), nil
}

// PopularMovies lists one page of the provider's popularity chart.
func (c *Client) PopularMovies(ctx context.Context, page int) ([]service.ProviderMovie, error) {
	if page < 1 {
		page = 1
	}

	var list movieListDTO
	query := url.Values{"page": []string{fmt.Sprint(page)}}
	if err := c.get(ctx, "/movie/popular", query, &list); err != nil {
		return nil, err
	}

	return toProviderMovies(list.Results), nil
}

// NowPlaying lists movies currently in theaters.
func (c *Client) NowPlaying(ctx context.Context) ([]service.ProviderMovie, error) {
	var list movieListDTO
	if err := c.get(ctx, "/movie/now_playing", nil, &list); err != nil {
		return nil, err
	}

	return toProviderMovies(list.Results), nil
}

// MovieVideos lists trailers and clips attached to one movie.
func (c *Client) MovieVideos(ctx context.Context, tmdbID int64) ([]entity.MovieVideo, error) {
	var payload struct {
		Results []struct {
			Key      string `json:"key"`
			Name     string `json:"name"`
			Site     string `json:"site"`
			Type     string `json:"type"`
			Official bool   `json:"official"`
		} `json:"results"`
	}

	path := fmt.Sprintf("/movie/%d/videos", tmdbID)
	if err := c.get(ctx, path, nil, &payload); err != nil {
		return nil, err
	}

	videos := make([]entity.MovieVideo, 0, len(payload.Results))
	for _, v := range payload.Results {
		videos = append(videos, entity.MovieVideo{
			Key:      v.Key,
			Name:     v.Name,
			Site:     v.Site,
			Type:     v.Type,
			Official: v.Official,
		})
	}

	return videos, nil
}

// MovieGenres returns the provider's genre id to name mapping.
func (c *Client) MovieGenres(ctx context.Context) (map[int64]string, error) {
	var payload struct {
		Genres []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"genres"`
	}

	if err := c.get(ctx, "/genre/movie/list", nil, &payload); err != nil {
		return nil, err
	}

	genres := make(map[int64]string, len(payload.Genres))
	for _, g := range payload.Genres {
		genres[g.ID] = g.Name
	}

	return genres, nil
}

// get performs one provider request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)

	endpoint := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create provider request")
	}
	req.Header.Set("Accept", "application/json")

	if c.metrics != nil {
		c.metrics.ProviderRequests.Inc()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.metrics != nil {
			c.metrics.ProviderFailures.Inc()
		}

		return errors.Wrapf(err, "provider request %s failed", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if c.metrics != nil {
			c.metrics.ProviderFailures.Inc()
		}
		body, _ := io.ReadAll(resp.Body)

		return errors.Errorf("provider request %s failed with status %d: %s", path, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode provider response for %s", path)
	}

	return nil
}

func toProviderMovies(dtos []providerMovieDTO) []service.ProviderMovie {
	movies := make([]service.ProviderMovie, 0, len(dtos))
	for _, dto := range dtos {
		movies = append(movies, service.ProviderMovie{
			TMDBID:       dto.ID,
			Title:        dto.Title,
			Overview:     dto.Overview,
			PosterPath:   dto.PosterPath,
			BackdropPath: dto.BackdropPath,
			ReleaseDate:  dto.ReleaseDate,
			VoteAverage:  dto.VoteAverage,
			VoteCount:    dto.VoteCount,
			Popularity:   dto.Popularity,
			GenreIDs:     dto.GenreIDs,
		})
	}

	return movies
}
