package repository

import (
	"context"
	"errors"

	"cinelog/internal/domain/entity"
)

// ErrMovieNotFound is returned when no catalog row matches the provider id.
var ErrMovieNotFound = errors.New("movie not found")

// MovieRepository defines read and sync operations for the local movie catalog.
type MovieRepository interface {
	// FindByTMDBID retrieves one movie by the metadata provider's id.
	FindByTMDBID(ctx context.Context, tmdbID int64) (*entity.Movie, error)

	// SearchByTitle matches titles by case-insensitive substring and returns
	// one page ordered by popularity.
	SearchByTitle(ctx context.Context, keyword string, page, limit int) (*entity.MoviePage, error)

	// FindByGenres returns up to limit movies sharing at least one of the
	// given genres, excluding the movie identified by excludeTMDBID.
	FindByGenres(ctx context.Context, genres []string, excludeTMDBID int64, limit int) ([]entity.Movie, error)

	// Upsert inserts or refreshes a catalog row keyed by TMDBID.
	Upsert(ctx context.Context, movie *entity.Movie) error
}
