// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteMovie marks a movie as a favorite of an account.
// The (AccountID, TMDBID) pair is unique.
type FavoriteMovie struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"accountId"`
	TMDBID    int64     `json:"movieId"`
	CreatedAt time.Time `json:"createdAt"`
}

// WatchlistMovie marks a movie as queued for later viewing.
// The (AccountID, TMDBID) pair is unique.
type WatchlistMovie struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"accountId"`
	TMDBID    int64     `json:"movieId"`
	CreatedAt time.Time `json:"createdAt"`
}

// MovieRating is an account's score for a movie. Re-voting replaces the
// previous value.
type MovieRating struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"accountId"`
	TMDBID    int64     `json:"movieId"`
	Value     float64   `json:"value"` // 0..10, validated at the API boundary.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MovieReview is an account's written review of a movie.
type MovieReview struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"accountId"`
	TMDBID    int64     `json:"movieId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
