package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteMovieModel mirrors the 'favorite_movies' table.
type FavoriteMovieModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_account_movie"`
	TMDBID    int64     `gorm:"column:tmdb_id;not null;uniqueIndex:idx_favorites_account_movie"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteMovieModel) TableName() string {
	return "favorite_movies"
}

// WatchlistMovieModel mirrors the 'watchlist_movies' table.
type WatchlistMovieModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_account_movie"`
	TMDBID    int64     `gorm:"column:tmdb_id;not null;uniqueIndex:idx_watchlist_account_movie"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WatchlistMovieModel) TableName() string {
	return "watchlist_movies"
}

// MovieRatingModel mirrors the 'movie_ratings' table. Re-voting updates
// the row in place, keyed by the unique (account, movie) pair.
type MovieRatingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_account_movie"`
	TMDBID    int64     `gorm:"column:tmdb_id;not null;uniqueIndex:idx_ratings_account_movie"`
	Value     float64   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MovieRatingModel) TableName() string {
	return "movie_ratings"
}

// MovieReviewModel mirrors the 'movie_reviews' table.
type MovieReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	TMDBID    int64     `gorm:"column:tmdb_id;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MovieReviewModel) TableName() string {
	return "movie_reviews"
}
