package tmdb

import (
	"context"
	"testing"

	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	genres    map[int64]string
	genresErr error
}

func (s *stubProvider) TrendingMovies(context.Context, service.TrendingWindow) ([]service.ProviderMovie, error) {
	return nil, nil
}

func (s *stubProvider) PopularMovies(context.Context, int) ([]service.ProviderMovie, error) {
	return nil, nil
}

func (s *stubProvider) NowPlaying(context.Context) ([]service.ProviderMovie, error) {
	return nil, nil
}

func (s *stubProvider) MovieVideos(context.Context, int64) ([]entity.MovieVideo, error) {
	return nil, nil
}

func (s *stubProvider) MovieGenres(context.Context) (map[int64]string, error) {
	return s.genres, s.genresErr
}

func TestGenreCache_UnknownBeforeRefresh(t *testing.T) {
	cache := NewGenreCache(&stubProvider{})

	names := cache.Resolve([]int64{28, 12})
	assert.Equal(t, []string{UnknownGenre, UnknownGenre}, names)
}

func TestGenreCache_ResolvesAfterRefresh(t *testing.T) {
	provider := &stubProvider{genres: map[int64]string{28: "Action", 12: "Adventure"}}
	cache := NewGenreCache(provider)

	require.NoError(t, cache.Refresh(context.Background()))

	names := cache.Resolve([]int64{28, 99, 12})
	assert.Equal(t, []string{"Action", UnknownGenre, "Adventure"}, names)
}

func TestGenreCache_KeepsOldMappingOnRefreshFailure(t *testing.T) {
	provider := &stubProvider{genres: map[int64]string{28: "Action"}}
	cache := NewGenreCache(provider)
	require.NoError(t, cache.Refresh(context.Background()))

	provider.genresErr = errors.New("provider down")
	assert.Error(t, cache.Refresh(context.Background()))

	// Previous mapping survives a failed refresh.
	assert.Equal(t, []string{"Action"}, cache.Resolve([]int64{28}))
}
