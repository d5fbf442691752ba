package impl

import (
	"context"
	"log/slog"

	deliverycontext "cinelog/internal/delivery/context"
	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	"cinelog/internal/domain/service"
	"cinelog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultSearchLimit    = 20
	defaultTrailerLimit   = 10
	defaultRecommendLimit = 10
)

// movieService implements the MovieUsecase interface. Provider charts
// are written through into the local catalog so search and
// recommendations can run entirely on local data.
type movieService struct {
	movieRepo repository.MovieRepository
	provider  service.MetadataProvider
	genres    service.GenreResolver
	logger    *slog.Logger
}

// MovieServiceParams holds dependencies for movieService, injected by Fx.
type MovieServiceParams struct {
	fx.In

	MovieRepo repository.MovieRepository
	Provider  service.MetadataProvider
	Genres    service.GenreResolver
	Logger    *slog.Logger
}

// NewMovieService is the constructor for movieService.
func NewMovieService(params MovieServiceParams) usecase.MovieUsecase {
	return &movieService{
		movieRepo: params.MovieRepo,
		provider:  params.Provider,
		genres:    params.Genres,
		logger:    params.Logger,
	}
}

func (srv *movieService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// TrendingToday lists movies trending over the last day.
func (srv *movieService) TrendingToday(ctx context.Context) ([]entity.Movie, error) {
	return srv.trending(ctx, service.TrendingToday)
}

// TrendingThisWeek lists movies trending over the last week.
func (srv *movieService) TrendingThisWeek(ctx context.Context) ([]entity.Movie, error) {
	return srv.trending(ctx, service.TrendingThisWeek)
}

func (srv *movieService) trending(ctx context.Context, window service.TrendingWindow) ([]entity.Movie, error) {
	providerMovies, err := srv.provider.TrendingMovies(ctx, window)
	if err != nil {
		srv.log(ctx).Error("Trending chart request failed", slog.String("window", string(window)), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrMetadataProviderFailed, "failed to fetch trending chart")
	}

	return srv.syncIntoCatalog(ctx, providerMovies), nil
}

// Popular lists one page of the provider's popularity chart.
func (srv *movieService) Popular(ctx context.Context, page int) ([]entity.Movie, error) {
	if page < 1 {
		page = 1
	}

	providerMovies, err := srv.provider.PopularMovies(ctx, page)
	if err != nil {
		srv.log(ctx).Error("Popular chart request failed", slog.Int("page", page), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrMetadataProviderFailed, "failed to fetch popular chart")
	}

	return srv.syncIntoCatalog(ctx, providerMovies), nil
}

// syncIntoCatalog resolves genre names and writes each chart entry
// through into the local catalog. A failed upsert degrades to a log
// line; the chart itself is still served.
func (srv *movieService) syncIntoCatalog(ctx context.Context, providerMovies []service.ProviderMovie) []entity.Movie {
	movies := make([]entity.Movie, 0, len(providerMovies))
	for _, pm := range providerMovies {
		movie := entity.Movie{
			TMDBID:       pm.TMDBID,
			Title:        pm.Title,
			Overview:     pm.Overview,
			PosterPath:   pm.PosterPath,
			BackdropPath: pm.BackdropPath,
			ReleaseDate:  pm.ReleaseDate,
			VoteAverage:  pm.VoteAverage,
			VoteCount:    pm.VoteCount,
			Popularity:   pm.Popularity,
			Genres:       srv.genres.Resolve(pm.GenreIDs),
		}

		if err := srv.movieRepo.Upsert(ctx, &movie); err != nil {
			srv.log(ctx).Warn("Failed to sync movie into catalog", slog.Int64("tmdbID", movie.TMDBID), slog.Any("error", err))
		}

		movies = append(movies, movie)
	}

	return movies
}

// LatestTrailers pairs now-playing movies with their official trailers.
// Movies without a usable trailer are skipped.
func (srv *movieService) LatestTrailers(ctx context.Context, limit int) ([]usecase.TrailerOutput, error) {
	if limit < 1 {
		limit = defaultTrailerLimit
	}

	providerMovies, err := srv.provider.NowPlaying(ctx)
	if err != nil {
		srv.log(ctx).Error("Now-playing request failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrMetadataProviderFailed, "failed to fetch now-playing chart")
	}

	movies := srv.syncIntoCatalog(ctx, providerMovies)

	trailers := make([]usecase.TrailerOutput, 0, limit)
	for _, movie := range movies {
		if len(trailers) == limit {
			break
		}

		videos, err := srv.provider.MovieVideos(ctx, movie.TMDBID)
		if err != nil {
			srv.log(ctx).Warn("Failed to fetch videos", slog.Int64("tmdbID", movie.TMDBID), slog.Any("error", err))

			continue
		}

		trailer := pickTrailer(videos)
		if trailer == nil {
			continue
		}

		trailers = append(trailers, usecase.TrailerOutput{Movie: movie, Trailer: trailer})
	}

	return trailers, nil
}

// pickTrailer chooses the best video: official YouTube trailers first,
// then any trailer, then nothing.
func pickTrailer(videos []entity.MovieVideo) *entity.MovieVideo {
	var fallback *entity.MovieVideo
	for i := range videos {
		video := &videos[i]
		if video.Type != "Trailer" || video.Site != "YouTube" {
			continue
		}
		if video.Official {
			return video
		}
		if fallback == nil {
			fallback = video
		}
	}

	return fallback
}

// Detail returns one movie from the local catalog.
func (srv *movieService) Detail(ctx context.Context, tmdbID int64) (*entity.Movie, error) {
	movie, err := srv.movieRepo.FindByTMDBID(ctx, tmdbID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMovieNotFound, "movie detail lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load movie detail")
	}

	return movie, nil
}

// Search runs a paginated title search over the local catalog.
func (srv *movieService) Search(ctx context.Context, input *usecase.SearchMoviesInput) (*entity.MoviePage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultSearchLimit
	}

	result, err := srv.movieRepo.SearchByTitle(ctx, input.Keyword, page, limit)
	if err != nil {
		srv.log(ctx).Error("Catalog search failed", slog.String("keyword", input.Keyword), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search catalog")
	}

	return result, nil
}

// Recommendations lists movies sharing genres with the given one.
func (srv *movieService) Recommendations(ctx context.Context, tmdbID int64, limit int) ([]entity.Movie, error) {
	if limit < 1 {
		limit = defaultRecommendLimit
	}

	movie, err := srv.movieRepo.FindByTMDBID(ctx, tmdbID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMovieNotFound, "recommendation source not in catalog")
		}

		return nil, errors.Wrap(err, "failed to load recommendation source")
	}

	if len(movie.Genres) == 0 {
		return []entity.Movie{}, nil
	}

	related, err := srv.movieRepo.FindByGenres(ctx, movie.Genres, movie.TMDBID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load related movies")
	}

	return related, nil
}

// RefreshGenres reloads the provider's genre mapping into the cache.
func (srv *movieService) RefreshGenres(ctx context.Context) error {
	if err := srv.genres.Refresh(ctx); err != nil {
		srv.log(ctx).Error("Genre cache refresh failed", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrMetadataProviderFailed, "failed to refresh genre cache")
	}

	return nil
}
