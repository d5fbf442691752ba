package postgres

import (
	"context"

	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/repository"
	"cinelog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collectionRepository implements the domain.CollectionRepository interface using GORM.
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository is the constructor for collectionRepository.
func NewCollectionRepository(db *gorm.DB) repository.CollectionRepository {
	return &collectionRepository{db: db}
}

// AddFavorite records a favorite. Adding an existing favorite is a no-op.
func (repo *collectionRepository) AddFavorite(ctx context.Context, accountID uuid.UUID, tmdbID int64) error {
	favorite := &model.FavoriteMovieModel{AccountID: accountID, TMDBID: tmdbID}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favorite).Error
	if err != nil {
		return errors.Wrap(err, "failed to add favorite")
	}

	return nil
}

// RemoveFavorite deletes a favorite if present.
func (repo *collectionRepository) RemoveFavorite(ctx context.Context, accountID uuid.UUID, tmdbID int64) error {
	err := repo.db.WithContext(ctx).
		Where("account_id = ? AND tmdb_id = ?", accountID, tmdbID).
		Delete(&model.FavoriteMovieModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

// ListFavorites returns the account's favorites, newest first.
func (repo *collectionRepository) ListFavorites(ctx context.Context, accountID uuid.UUID) ([]entity.FavoriteMovie, error) {
	var rows []model.FavoriteMovieModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	favorites := make([]entity.FavoriteMovie, 0, len(rows))
	for _, row := range rows {
		favorites = append(favorites, entity.FavoriteMovie{
			ID:        row.ID,
			AccountID: row.AccountID,
			TMDBID:    row.TMDBID,
			CreatedAt: row.CreatedAt,
		})
	}

	return favorites, nil
}

// AddToWatchlist records a watchlist entry. Duplicates are a no-op.
func (repo *collectionRepository) AddToWatchlist(ctx context.Context, accountID uuid.UUID, tmdbID int64) error {
	item := &model.WatchlistMovieModel{AccountID: accountID, TMDBID: tmdbID}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(item).Error
	if err != nil {
		return errors.Wrap(err, "failed to add to watchlist")
	}

	return nil
}

// RemoveFromWatchlist deletes a watchlist entry if present.
func (repo *collectionRepository) RemoveFromWatchlist(ctx context.Context, accountID uuid.UUID, tmdbID int64) error {
	err := repo.db.WithContext(ctx).
		Where("account_id = ? AND tmdb_id = ?", accountID, tmdbID).
		Delete(&model.WatchlistMovieModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to remove from watchlist")
	}

	return nil
}

// ListWatchlist returns the account's watchlist, newest first.
func (repo *collectionRepository) ListWatchlist(ctx context.Context, accountID uuid.UUID) ([]entity.WatchlistMovie, error) {
	var rows []model.WatchlistMovieModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list watchlist")
	}

	items := make([]entity.WatchlistMovie, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.WatchlistMovie{
			ID:        row.ID,
			AccountID: row.AccountID,
			TMDBID:    row.TMDBID,
			CreatedAt: row.CreatedAt,
		})
	}

	return items, nil
}

// UpsertRating inserts or replaces the account's score for a movie.
func (repo *collectionRepository) UpsertRating(ctx context.Context, rating *entity.MovieRating) error {
	ratingM := &model.MovieRatingModel{
		AccountID: rating.AccountID,
		TMDBID:    rating.TMDBID,
		Value:     rating.Value,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}, {Name: "tmdb_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(ratingM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert rating")
	}

	return nil
}

// ListRatings returns all ratings the account has cast.
func (repo *collectionRepository) ListRatings(ctx context.Context, accountID uuid.UUID) ([]entity.MovieRating, error) {
	var rows []model.MovieRatingModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("updated_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	ratings := make([]entity.MovieRating, 0, len(rows))
	for _, row := range rows {
		ratings = append(ratings, entity.MovieRating{
			ID:        row.ID,
			AccountID: row.AccountID,
			TMDBID:    row.TMDBID,
			Value:     row.Value,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return ratings, nil
}

// AddReview appends a written review.
func (repo *collectionRepository) AddReview(ctx context.Context, review *entity.MovieReview) error {
	reviewM := &model.MovieReviewModel{
		AccountID: review.AccountID,
		TMDBID:    review.TMDBID,
		Content:   review.Content,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		return errors.Wrap(err, "failed to add review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// ListReviewsByMovie returns all reviews for one movie, newest first.
func (repo *collectionRepository) ListReviewsByMovie(ctx context.Context, tmdbID int64) ([]entity.MovieReview, error) {
	var rows []model.MovieReviewModel
	err := repo.db.WithContext(ctx).
		Where("tmdb_id = ?", tmdbID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]entity.MovieReview, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, entity.MovieReview{
			ID:        row.ID,
			AccountID: row.AccountID,
			TMDBID:    row.TMDBID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return reviews, nil
}
