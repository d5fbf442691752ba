package impl

import (
	"context"
	"log/slog"

	deliverycontext "cinelog/internal/delivery/context"
	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	"cinelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// collectionService implements the CollectionUsecase interface.
type collectionService struct {
	collectionRepo repository.CollectionRepository
	movieRepo      repository.MovieRepository
	logger         *slog.Logger
}

// CollectionServiceParams holds dependencies for collectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	CollectionRepo repository.CollectionRepository
	MovieRepo      repository.MovieRepository
	Logger         *slog.Logger
}

// NewCollectionService is the constructor for collectionService.
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	return &collectionService{
		collectionRepo: params.CollectionRepo,
		movieRepo:      params.MovieRepo,
		logger:         params.Logger,
	}
}

func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireInCatalog rejects collection writes for movies the catalog has
// never seen, so lists never dangle.
func (srv *collectionService) requireInCatalog(ctx context.Context, tmdbID int64) error {
	if _, err := srv.movieRepo.FindByTMDBID(ctx, tmdbID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return errors.Wrap(domainerrors.ErrMovieNotFound, "movie is not in the catalog")
		}

		return errors.Wrap(err, "failed to check catalog")
	}

	return nil
}

// AddFavorite records a favorite. Adding an existing favorite is a no-op.
func (srv *collectionService) AddFavorite(ctx context.Context, input *usecase.CollectionItemInput) error {
	if err := srv.requireInCatalog(ctx, input.TMDBID); err != nil {
		return err
	}

	if err := srv.collectionRepo.AddFavorite(ctx, input.AccountID, input.TMDBID); err != nil {
		return errors.Wrap(err, "failed to add favorite")
	}

	srv.log(ctx).Debug("Favorite added", slog.Any("accountID", input.AccountID), slog.Int64("tmdbID", input.TMDBID))

	return nil
}

// RemoveFavorite deletes a favorite if present.
func (srv *collectionService) RemoveFavorite(ctx context.Context, input *usecase.CollectionItemInput) error {
	if err := srv.collectionRepo.RemoveFavorite(ctx, input.AccountID, input.TMDBID); err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

// ListFavorites returns the account's favorite movies, newest first.
func (srv *collectionService) ListFavorites(ctx context.Context, accountID uuid.UUID) ([]entity.Movie, error) {
	favorites, err := srv.collectionRepo.ListFavorites(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	ids := make([]int64, 0, len(favorites))
	for _, favorite := range favorites {
		ids = append(ids, favorite.TMDBID)
	}

	return srv.resolveMovies(ctx, ids), nil
}

// AddToWatchlist records a watchlist entry. Duplicates are a no-op.
func (srv *collectionService) AddToWatchlist(ctx context.Context, input *usecase.CollectionItemInput) error {
	if err := srv.requireInCatalog(ctx, input.TMDBID); err != nil {
		return err
	}

	if err := srv.collectionRepo.AddToWatchlist(ctx, input.AccountID, input.TMDBID); err != nil {
		return errors.Wrap(err, "failed to add to watchlist")
	}

	srv.log(ctx).Debug("Watchlist entry added", slog.Any("accountID", input.AccountID), slog.Int64("tmdbID", input.TMDBID))

	return nil
}

// RemoveFromWatchlist deletes a watchlist entry if present.
func (srv *collectionService) RemoveFromWatchlist(ctx context.Context, input *usecase.CollectionItemInput) error {
	if err := srv.collectionRepo.RemoveFromWatchlist(ctx, input.AccountID, input.TMDBID); err != nil {
		return errors.Wrap(err, "failed to remove from watchlist")
	}

	return nil
}

// ListWatchlist returns the account's watchlist movies, newest first.
func (srv *collectionService) ListWatchlist(ctx context.Context, accountID uuid.UUID) ([]entity.Movie, error) {
	watchlist, err := srv.collectionRepo.ListWatchlist(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list watchlist")
	}

	ids := make([]int64, 0, len(watchlist))
	for _, item := range watchlist {
		ids = append(ids, item.TMDBID)
	}

	return srv.resolveMovies(ctx, ids), nil
}

// resolveMovies expands catalog ids into movies, dropping entries whose
// catalog row has disappeared rather than failing the whole list.
func (srv *collectionService) resolveMovies(ctx context.Context, tmdbIDs []int64) []entity.Movie {
	movies := make([]entity.Movie, 0, len(tmdbIDs))
	for _, tmdbID := range tmdbIDs {
		movie, err := srv.movieRepo.FindByTMDBID(ctx, tmdbID)
		if err != nil {
			srv.log(ctx).Warn("Collection entry missing from catalog", slog.Int64("tmdbID", tmdbID), slog.Any("error", err))

			continue
		}

		movies = append(movies, *movie)
	}

	return movies
}

// VoteRating inserts or replaces the caller's score for a movie.
func (srv *collectionService) VoteRating(ctx context.Context, input *usecase.VoteRatingInput) error {
	if err := srv.requireInCatalog(ctx, input.TMDBID); err != nil {
		return err
	}

	rating := &entity.MovieRating{
		AccountID: input.AccountID,
		TMDBID:    input.TMDBID,
		Value:     input.Value,
	}

	if err := srv.collectionRepo.UpsertRating(ctx, rating); err != nil {
		return errors.Wrap(err, "failed to store rating")
	}

	srv.log(ctx).Debug("Rating stored", slog.Any("accountID", input.AccountID), slog.Int64("tmdbID", input.TMDBID), slog.Float64("value", input.Value))

	return nil
}

// ListRatings returns all ratings the account has cast.
func (srv *collectionService) ListRatings(ctx context.Context, accountID uuid.UUID) ([]entity.MovieRating, error) {
	ratings, err := srv.collectionRepo.ListRatings(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	return ratings, nil
}

// AddReview appends a written review and returns it with its assigned id.
func (srv *collectionService) AddReview(ctx context.Context, input *usecase.AddReviewInput) (*entity.MovieReview, error) {
	if err := srv.requireInCatalog(ctx, input.TMDBID); err != nil {
		return nil, err
	}

	review := &entity.MovieReview{
		AccountID: input.AccountID,
		TMDBID:    input.TMDBID,
		Content:   input.Content,
	}

	if err := srv.collectionRepo.AddReview(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to store review")
	}

	srv.log(ctx).Debug("Review stored", slog.Any("accountID", input.AccountID), slog.Int64("tmdbID", input.TMDBID))

	return review, nil
}

// ListReviews returns all reviews for one movie, newest first.
func (srv *collectionService) ListReviews(ctx context.Context, tmdbID int64) ([]entity.MovieReview, error) {
	reviews, err := srv.collectionRepo.ListReviewsByMovie(ctx, tmdbID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}
