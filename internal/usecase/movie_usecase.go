package usecase

import (
	"context"

	"cinelog/internal/domain/entity"
)

// SearchMoviesInput carries a title search with pagination.
type SearchMoviesInput struct {
	Keyword string `query:"key_word" validate:"required,min=1,max=250"`
	Page    int    `query:"page" validate:"omitempty,min=1"`
	Limit   int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// TrailerOutput pairs a movie with its best available trailer.
type TrailerOutput struct {
	Movie   entity.Movie       `json:"movie"`
	Trailer *entity.MovieVideo `json:"trailer"`
}

// MovieUsecase exposes the catalog: trending and popular charts proxied
// from the metadata provider, plus detail, search and recommendations
// served from the local catalog.
type MovieUsecase interface {
	// TrendingToday lists movies trending over the last day.
	TrendingToday(ctx context.Context) ([]entity.Movie, error)

	// TrendingThisWeek lists movies trending over the last week.
	TrendingThisWeek(ctx context.Context) ([]entity.Movie, error)

	// Popular lists one page of the provider's popularity chart.
	Popular(ctx context.Context, page int) ([]entity.Movie, error)

	// LatestTrailers pairs now-playing movies with their official trailers.
	LatestTrailers(ctx context.Context, limit int) ([]TrailerOutput, error)

	// Detail returns one movie from the local catalog.
	Detail(ctx context.Context, tmdbID int64) (*entity.Movie, error)

	// Search runs a paginated title search over the local catalog.
	Search(ctx context.Context, input *SearchMoviesInput) (*entity.MoviePage, error)

	// Recommendations lists movies sharing genres with the given one.
	Recommendations(ctx context.Context, tmdbID int64, limit int) ([]entity.Movie, error)

	// RefreshGenres reloads the provider's genre mapping into the cache.
	// Admin-only; charts otherwise refresh it lazily at startup.
	RefreshGenres(ctx context.Context) error
}
