package impl

import (
	"context"
	"testing"

	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	mockRepo "cinelog/internal/mocks/repository"
	"cinelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// collectionServiceFixtures holds all test dependencies for collection service tests.
type collectionServiceFixtures struct {
	service        usecase.CollectionUsecase
	collectionRepo *mockRepo.MockCollectionRepository
	movieRepo      *mockRepo.MockMovieRepository
}

func createTestCollectionService(t *testing.T) collectionServiceFixtures {
	collectionRepo := mockRepo.NewMockCollectionRepository(t)
	movieRepo := mockRepo.NewMockMovieRepository(t)

	svc := NewCollectionService(CollectionServiceParams{
		CollectionRepo: collectionRepo,
		MovieRepo:      movieRepo,
		Logger:         newDiscardLogger(),
	})

	return collectionServiceFixtures{
		service:        svc,
		collectionRepo: collectionRepo,
		movieRepo:      movieRepo,
	}
}

func TestCollectionService_AddFavorite_Success(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.movieRepo.EXPECT().
		FindByTMDBID(ctx, int64(100)).
		Return(&entity.Movie{TMDBID: 100}, nil)
	fx.collectionRepo.EXPECT().
		AddFavorite(ctx, accountID, int64(100)).
		Return(nil)

	err := fx.service.AddFavorite(ctx, &usecase.CollectionItemInput{AccountID: accountID, TMDBID: 100})

	require.NoError(t, err)
}

func TestCollectionService_AddFavorite_MovieNotInCatalog(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()

	fx.movieRepo.EXPECT().
		FindByTMDBID(ctx, int64(404)).
		Return(nil, repository.ErrMovieNotFound)

	err := fx.service.AddFavorite(ctx, &usecase.CollectionItemInput{AccountID: uuid.New(), TMDBID: 404})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMovieNotFound)
}

func TestCollectionService_ListFavorites_DropsMissingCatalogRows(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.collectionRepo.EXPECT().
		ListFavorites(ctx, accountID).
		Return([]entity.FavoriteMovie{
			{AccountID: accountID, TMDBID: 100},
			{AccountID: accountID, TMDBID: 200},
		}, nil)
	fx.movieRepo.EXPECT().
		FindByTMDBID(ctx, int64(100)).
		Return(&entity.Movie{TMDBID: 100, Title: "First"}, nil)
	fx.movieRepo.EXPECT().
		FindByTMDBID(ctx, int64(200)).
		Return(nil, repository.ErrMovieNotFound)

	movies, err := fx.service.ListFavorites(ctx, accountID)

	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "First", movies[0].Title)
}

func TestCollectionService_AddToWatchlist_Success(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.movieRepo.EXPECT().
		FindByTMDBID(ctx, int64(100)).
		Return(&entity.Movie{TMDBID: 100}, nil)
	fx.collectionRepo.EXPECT().
		AddToWatchlist(ctx, accountID, int64(100)).
		Return(nil)

	err := fx.service.AddToWatchlist(ctx, &usecase.CollectionItemInput{AccountID: accountID, TMDBID: 100})

	require.NoError(t, err)
}

func TestCollectionService_RemoveFromWatchlist_Success(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.collectionRepo.EXPECT().
		RemoveFromWatchlist(ctx, accountID, int64(100)).
		Return(nil)

	err := fx.service.RemoveFromWatchlist(ctx, &usecase.CollectionItemInput{AccountID: accountID, TMDBID: 100})

	require.NoError(t, err)
}

func TestCollectionService_VoteRating_Upserts(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.movieRepo.EXPECT().
		FindByTMDBID(ctx, int64(100)).
		Return(&entity.Movie{TMDBID: 100}, nil)

	var stored *entity.MovieRating
	fx.collectionRepo.EXPECT().
		UpsertRating(ctx, mock.AnythingOfType("*entity.MovieRating")).
		Run(func(ctx context.Context, rating *entity.MovieRating) {
			stored = rating
		}).
		Return(nil)

	err := fx.service.VoteRating(ctx, &usecase.VoteRatingInput{AccountID: accountID, TMDBID: 100, Value: 8.5})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, accountID, stored.AccountID)
	assert.InDelta(t, 8.5, stored.Value, 0.001)
}

func TestCollectionService_AddReview_BackfillsID(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	accountID := uuid.New()
	reviewID := uuid.New()

	fx.movieRepo.EXPECT().
		FindByTMDBID(ctx, int64(100)).
		Return(&entity.Movie{TMDBID: 100}, nil)
	fx.collectionRepo.EXPECT().
		AddReview(ctx, mock.AnythingOfType("*entity.MovieReview")).
		Run(func(ctx context.Context, review *entity.MovieReview) {
			review.ID = reviewID
		}).
		Return(nil)

	review, err := fx.service.AddReview(ctx, &usecase.AddReviewInput{
		AccountID: accountID,
		TMDBID:    100,
		Content:   "Great pacing, weak third act.",
	})

	require.NoError(t, err)
	assert.Equal(t, reviewID, review.ID)
	assert.Equal(t, "Great pacing, weak third act.", review.Content)
}

func TestCollectionService_ListReviews_Success(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	expected := []entity.MovieReview{
		{ID: uuid.New(), TMDBID: 100, Content: "Loved it."},
	}

	fx.collectionRepo.EXPECT().
		ListReviewsByMovie(ctx, int64(100)).
		Return(expected, nil)

	reviews, err := fx.service.ListReviews(ctx, 100)

	require.NoError(t, err)
	assert.Equal(t, expected, reviews)
}
