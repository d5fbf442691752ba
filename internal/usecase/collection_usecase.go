package usecase

import (
	"context"

	"cinelog/internal/domain/entity"

	"github.com/google/uuid"
)

// CollectionItemInput identifies one movie in a per-account collection.
type CollectionItemInput struct {
	AccountID uuid.UUID
	TMDBID    int64 `json:"movieId" validate:"required,min=1"`
}

// VoteRatingInput carries a score for one movie.
type VoteRatingInput struct {
	AccountID uuid.UUID
	TMDBID    int64   `json:"movieId" validate:"required,min=1"`
	Value     float64 `json:"value" validate:"min=0,max=10"`
}

// AddReviewInput carries a written review for one movie.
type AddReviewInput struct {
	AccountID uuid.UUID
	TMDBID    int64  `json:"movieId" validate:"required,min=1"`
	Content   string `json:"content" validate:"required,min=1,max=5000"`
}

// CollectionUsecase manages the per-account movie collections.
type CollectionUsecase interface {
	AddFavorite(ctx context.Context, input *CollectionItemInput) error
	RemoveFavorite(ctx context.Context, input *CollectionItemInput) error
	ListFavorites(ctx context.Context, accountID uuid.UUID) ([]entity.Movie, error)

	AddToWatchlist(ctx context.Context, input *CollectionItemInput) error
	RemoveFromWatchlist(ctx context.Context, input *CollectionItemInput) error
	ListWatchlist(ctx context.Context, accountID uuid.UUID) ([]entity.Movie, error)

	// VoteRating inserts or replaces the caller's score for a movie.
	VoteRating(ctx context.Context, input *VoteRatingInput) error
	ListRatings(ctx context.Context, accountID uuid.UUID) ([]entity.MovieRating, error)

	AddReview(ctx context.Context, input *AddReviewInput) (*entity.MovieReview, error)
	ListReviews(ctx context.Context, tmdbID int64) ([]entity.MovieReview, error)
}
