package service

import (
	"context"

	"cinelog/internal/domain/entity"
)

// ProviderMovie is a catalog entry as delivered by the external metadata
// provider, before genre ids are resolved to names.
type ProviderMovie struct {
	TMDBID       int64
	Title        string
	Overview     string
	PosterPath   string
	BackdropPath string
	ReleaseDate  string
	VoteAverage  float64
	VoteCount    int64
	Popularity   float64
	GenreIDs     []int64
}

// TrendingWindow selects the aggregation window for trending queries.
type TrendingWindow string

const (
	// TrendingToday aggregates over the last day.
	TrendingToday TrendingWindow = "day"
	// TrendingThisWeek aggregates over the last week.
	TrendingThisWeek TrendingWindow = "week"
)

// MetadataProvider is the read-side client for the external movie
// metadata service (TMDB-compatible API).
type MetadataProvider interface {
	// TrendingMovies lists movies trending in the given window.
	TrendingMovies(ctx context.Context, window TrendingWindow) ([]ProviderMovie, error)

	// PopularMovies lists one page of the provider's popularity chart.
	PopularMovies(ctx context.Context, page int) ([]ProviderMovie, error)

	// NowPlaying lists movies currently in theaters.
	NowPlaying(ctx context.Context) ([]ProviderMovie, error)

	// MovieVideos lists trailers and clips attached to one movie.
	MovieVideos(ctx context.Context, tmdbID int64) ([]entity.MovieVideo, error)

	// MovieGenres returns the provider's genre id to name mapping.
	MovieGenres(ctx context.Context) (map[int64]string, error)
}

// GenreResolver maps provider genre ids to display names. Implementations
// are safe for concurrent use; unknown ids resolve to "Unknown" rather
// than failing the request.
type GenreResolver interface {
	// Resolve maps each id to its name, substituting "Unknown" for ids the
	// resolver has not seen.
	Resolve(ids []int64) []string

	// Refresh reloads the mapping from the provider.
	Refresh(ctx context.Context) error
}
