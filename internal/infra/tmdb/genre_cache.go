package tmdb

import (
	"context"
	"sync"

	"cinelog/internal/domain/service"
)

// UnknownGenre is returned for ids the cache has not seen, including
// every id before the first successful refresh.
const UnknownGenre = "Unknown"

// GenreCache is a read-through cache over the provider's genre list.
// It is injected into the catalog use case rather than constructed
// there, so requests keep working (with the fallback name) when the
// provider is unreachable at startup.
type GenreCache struct {
	provider service.MetadataProvider

	mu    sync.RWMutex
	names map[int64]string
}

// NewGenreCache builds an empty cache bound to the provider.
func NewGenreCache(provider service.MetadataProvider) service.GenreResolver {
	return &GenreCache{
		provider: provider,
		names:    make(map[int64]string),
	}
}

// Resolve maps each id to its name, substituting UnknownGenre for
// unpopulated ids.
func (c *GenreCache) Resolve(ids []int64) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := c.names[id]; ok {
			names = append(names, name)
		} else {
			names = append(names, UnknownGenre)
		}
	}

	return names
}

// Refresh reloads the mapping from the provider. On failure the previous
// mapping stays in place.
func (c *GenreCache) Refresh(ctx context.Context) error {
	genres, err := c.provider.MovieGenres(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.names = genres
	c.mu.Unlock()

	return nil
}
