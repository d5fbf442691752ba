package repository

import (
	"context"

	"cinelog/internal/domain/entity"

	"github.com/google/uuid"
)

// CollectionRepository manages the per-account movie collections:
// favorites, watchlist, ratings, and reviews.
type CollectionRepository interface {
	// AddFavorite records a favorite. Adding an existing favorite is a no-op.
	AddFavorite(ctx context.Context, accountID uuid.UUID, tmdbID int64) error

	// RemoveFavorite deletes a favorite if present.
	RemoveFavorite(ctx context.Context, accountID uuid.UUID, tmdbID int64) error

	// ListFavorites returns the account's favorites, newest first.
	ListFavorites(ctx context.Context, accountID uuid.UUID) ([]entity.FavoriteMovie, error)

	// AddToWatchlist records a watchlist entry. Duplicates are a no-op.
	AddToWatchlist(ctx context.Context, accountID uuid.UUID, tmdbID int64) error

	// RemoveFromWatchlist deletes a watchlist entry if present.
	RemoveFromWatchlist(ctx context.Context, accountID uuid.UUID, tmdbID int64) error

	// ListWatchlist returns the account's watchlist, newest first.
	ListWatchlist(ctx context.Context, accountID uuid.UUID) ([]entity.WatchlistMovie, error)

	// UpsertRating inserts or replaces the account's score for a movie.
	UpsertRating(ctx context.Context, rating *entity.MovieRating) error

	// ListRatings returns all ratings the account has cast.
	ListRatings(ctx context.Context, accountID uuid.UUID) ([]entity.MovieRating, error)

	// AddReview appends a written review.
	AddReview(ctx context.Context, review *entity.MovieReview) error

	// ListReviewsByMovie returns all reviews for one movie, newest first.
	ListReviewsByMovie(ctx context.Context, tmdbID int64) ([]entity.MovieReview, error)
}
