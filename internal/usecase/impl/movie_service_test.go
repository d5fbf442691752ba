package impl

import (
	"context"
	"testing"

	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	"cinelog/internal/domain/service"
	mockRepo "cinelog/internal/mocks/repository"
	mockSvc "cinelog/internal/mocks/service"
	"cinelog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// movieServiceFixtures holds all test dependencies for movie service tests.
type movieServiceFixtures struct {
	service   usecase.MovieUsecase
	movieRepo *mockRepo.MockMovieRepository
	provider  *mockSvc.MockMetadataProvider
	genres    *mockSvc.MockGenreResolver
}

func createTestMovieService(t *testing.T) movieServiceFixtures {
	movieRepo := mockRepo.NewMockMovieRepository(t)
	provider := mockSvc.NewMockMetadataProvider(t)
	genres := mockSvc.NewMockGenreResolver(t)

	svc := NewMovieService(MovieServiceParams{
		MovieRepo: movieRepo,
		Provider:  provider,
		Genres:    genres,
		Logger:    newDiscardLogger(),
	})

	return movieServiceFixtures{
		service:   svc,
		movieRepo: movieRepo,
		provider:  provider,
		genres:    genres,
	}
}

func newProviderMovie(tmdbID int64, title string) service.ProviderMovie {
	return service.ProviderMovie{
		TMDBID:      tmdbID,
		Title:       title,
		Overview:    "overview",
		ReleaseDate: "2024-06-01",
		VoteAverage: 7.5,
		VoteCount:   1200,
		Popularity:  98.7,
		GenreIDs:    []int64{28, 12},
	}
}

func TestMovieService_TrendingToday_SyncsIntoCatalog(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()
	providerMovies := []service.ProviderMovie{
		newProviderMovie(100, "First"),
		newProviderMovie(200, "Second"),
	}

	fx.provider.EXPECT().
		TrendingMovies(ctx, service.TrendingToday).
		Return(providerMovies, nil)
	fx.genres.EXPECT().
		Resolve([]int64{28, 12}).
		Return([]string{"Action", "Adventure"}).
		Twice()
	fx.movieRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Movie")).
		Return(nil).
		Twice()

	movies, err := fx.service.TrendingToday(ctx)

	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, int64(100), movies[0].TMDBID)
	assert.Equal(t, []string{"Action", "Adventure"}, movies[0].Genres)
	assert.Equal(t, "Second", movies[1].Title)
}

func TestMovieService_TrendingThisWeek_ProviderFailure(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()

	fx.provider.EXPECT().
		TrendingMovies(ctx, service.TrendingThisWeek).
		Return(nil, assert.AnError)

	movies, err := fx.service.TrendingThisWeek(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMetadataProviderFailed)
	assert.Nil(t, movies)
}

func TestMovieService_TrendingToday_UpsertFailureStillServesChart(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()

	fx.provider.EXPECT().
		TrendingMovies(ctx, service.TrendingToday).
		Return([]service.ProviderMovie{newProviderMovie(100, "First")}, nil)
	fx.genres.EXPECT().
		Resolve([]int64{28, 12}).
		Return([]string{"Action", "Adventure"})
	fx.movieRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Movie")).
		Return(assert.AnError)

	movies, err := fx.service.TrendingToday(ctx)

	require.NoError(t, err)
	assert.Len(t, movies, 1)
}

func TestMovieService_Popular_NormalizesPage(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()

	fx.provider.EXPECT().
		PopularMovies(ctx, 1).
		Return([]service.ProviderMovie{}, nil)

	movies, err := fx.service.Popular(ctx, 0)

	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestMovieService_LatestTrailers_PicksOfficialTrailer(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()

	fx.provider.EXPECT().
		NowPlaying(ctx).
		Return([]service.ProviderMovie{
			newProviderMovie(100, "First"),
			newProviderMovie(200, "Second"),
		}, nil)
	fx.genres.EXPECT().
		Resolve([]int64{28, 12}).
		Return([]string{"Action", "Adventure"}).
		Twice()
	fx.movieRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Movie")).
		Return(nil).
		Twice()

	fx.provider.EXPECT().
		MovieVideos(ctx, int64(100)).
		Return([]entity.MovieVideo{
			{Key: "clip", Site: "YouTube", Type: "Clip", Official: true},
			{Key: "fan_cut", Site: "YouTube", Type: "Trailer", Official: false},
			{Key: "official", Site: "YouTube", Type: "Trailer", Official: true},
		}, nil)
	fx.provider.EXPECT().
		MovieVideos(ctx, int64(200)).
		Return([]entity.MovieVideo{
			{Key: "vimeo_only", Site: "Vimeo", Type: "Trailer", Official: true},
		}, nil)

	trailers, err := fx.service.LatestTrailers(ctx, 10)

	require.NoError(t, err)
	require.Len(t, trailers, 1)
	assert.Equal(t, int64(100), trailers[0].Movie.TMDBID)
	assert.Equal(t, "official", trailers[0].Trailer.Key)
}

func TestMovieService_LatestTrailers_FallsBackToUnofficial(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()

	fx.provider.EXPECT().
		NowPlaying(ctx).
		Return([]service.ProviderMovie{newProviderMovie(100, "First")}, nil)
	fx.genres.EXPECT().
		Resolve([]int64{28, 12}).
		Return([]string{"Action", "Adventure"})
	fx.movieRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Movie")).
		Return(nil)
	fx.provider.EXPECT().
		MovieVideos(ctx, int64(100)).
		Return([]entity.MovieVideo{
			{Key: "fan_cut", Site: "YouTube", Type: "Trailer", Official: false},
		}, nil)

	trailers, err := fx.service.LatestTrailers(ctx, 10)

	require.NoError(t, err)
	require.Len(t, trailers, 1)
	assert.Equal(t, "fan_cut", trailers[0].Trailer.Key)
}

func TestMovieService_Detail_NotFound(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()

	fx.movieRepo.EXPECT().
		FindByTMDBID(ctx, int64(404)).
		Return(nil, repository.ErrMovieNotFound)

	movie, err := fx.service.Detail(ctx, 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMovieNotFound)
	assert.Nil(t, movie)
}

func TestMovieService_Search_AppliesDefaults(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()
	expected := &entity.MoviePage{
		Results: []entity.Movie{{TMDBID: 100, Title: "First"}},
		Total:   1,
		Page:    1,
		Limit:   defaultSearchLimit,
	}

	fx.movieRepo.EXPECT().
		SearchByTitle(ctx, "first", 1, defaultSearchLimit).
		Return(expected, nil)

	result, err := fx.service.Search(ctx, &usecase.SearchMoviesInput{Keyword: "first"})

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestMovieService_Recommendations_SharedGenres(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()
	source := &entity.Movie{TMDBID: 100, Genres: []string{"Action", "Adventure"}}
	related := []entity.Movie{{TMDBID: 200, Title: "Second"}}

	fx.movieRepo.EXPECT().
		FindByTMDBID(ctx, int64(100)).
		Return(source, nil)
	fx.movieRepo.EXPECT().
		FindByGenres(ctx, source.Genres, int64(100), defaultRecommendLimit).
		Return(related, nil)

	movies, err := fx.service.Recommendations(ctx, 100, 0)

	require.NoError(t, err)
	assert.Equal(t, related, movies)
}

func TestMovieService_Recommendations_NoGenres(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()

	fx.movieRepo.EXPECT().
		FindByTMDBID(ctx, int64(100)).
		Return(&entity.Movie{TMDBID: 100}, nil)

	movies, err := fx.service.Recommendations(ctx, 100, 5)

	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestMovieService_RefreshGenres_Success(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()

	fx.genres.EXPECT().
		Refresh(ctx).
		Return(nil).
		Once()

	err := fx.service.RefreshGenres(ctx)

	require.NoError(t, err)
}

func TestMovieService_RefreshGenres_ProviderFailure(t *testing.T) {
	fx := createTestMovieService(t)

	ctx := context.Background()

	fx.genres.EXPECT().
		Refresh(ctx).
		Return(assert.AnError).
		Once()

	err := fx.service.RefreshGenres(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrMetadataProviderFailed)
}
