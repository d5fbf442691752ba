package postgres

import (
	"context"
	"encoding/json"

	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/repository"
	"cinelog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// movieRepository implements the domain.MovieRepository interface using GORM.
type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository is the constructor for movieRepository.
func NewMovieRepository(db *gorm.DB) repository.MovieRepository {
	return &movieRepository{db: db}
}

// FindByTMDBID retrieves one movie by the metadata provider's id.
func (repo *movieRepository) FindByTMDBID(ctx context.Context, tmdbID int64) (*entity.Movie, error) {
	var movieM model.MovieModel
	err := repo.db.WithContext(ctx).
		Where("tmdb_id = ?", tmdbID).
		First(&movieM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMovieNotFound
		}

		return nil, errors.Wrap(err, "failed to find movie by tmdb id")
	}

	return toMovieDomain(&movieM)
}

// SearchByTitle matches titles by case-insensitive substring and returns
// one page ordered by popularity.
func (repo *movieRepository) SearchByTitle(ctx context.Context, keyword string, page, limit int) (*entity.MoviePage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	pattern := "%" + keyword + "%"

	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.MovieModel{}).
		Where("title ILIKE ?", pattern).
		Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count matching movies")
	}

	var rows []model.MovieModel
	if err := repo.db.WithContext(ctx).
		Where("title ILIKE ?", pattern).
		Order("popularity DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search movies by title")
	}

	results := make([]entity.Movie, 0, len(rows))
	for i := range rows {
		movie, err := toMovieDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		results = append(results, *movie)
	}

	return &entity.MoviePage{
		Results: results,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

// FindByGenres returns up to limit movies sharing at least one of the
// given genres, excluding the movie identified by excludeTMDBID.
func (repo *movieRepository) FindByGenres(ctx context.Context, genres []string, excludeTMDBID int64, limit int) ([]entity.Movie, error) {
	if limit < 1 {
		limit = 10
	}
	if len(genres) == 0 {
		return []entity.Movie{}, nil
	}

	encoded, err := json.Marshal(genres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode genre filter")
	}

	var rows []model.MovieModel
	// jsonb ?| tests overlap between the stored genre array and the filter.
	if err := repo.db.WithContext(ctx).
		Where("tmdb_id <> ?", excludeTMDBID).
		Where("genres ?| (SELECT array_agg(value) FROM jsonb_array_elements_text(?::jsonb))", string(encoded)).
		Order("popularity DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find movies by genres")
	}

	results := make([]entity.Movie, 0, len(rows))
	for i := range rows {
		movie, err := toMovieDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		results = append(results, *movie)
	}

	return results, nil
}

// Upsert inserts or refreshes a catalog row keyed by TMDBID.
func (repo *movieRepository) Upsert(ctx context.Context, movie *entity.Movie) error {
	movieM, err := fromMovieDomain(movie)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tmdb_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "overview", "poster_path", "backdrop_path",
				"release_date", "vote_average", "vote_count", "popularity",
				"genres", "updated_at",
			}),
		}).
		Create(movieM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert movie")
	}

	return nil
}

// toMovieDomain maps the persistence model back to a pure domain entity.
func toMovieDomain(m *model.MovieModel) (*entity.Movie, error) {
	var genres []string
	if len(m.Genres) > 0 {
		if err := json.Unmarshal(m.Genres, &genres); err != nil {
			return nil, errors.Wrap(err, "failed to decode stored genres")
		}
	}

	return &entity.Movie{
		ID:           m.ID,
		TMDBID:       m.TMDBID,
		Title:        m.Title,
		Overview:     m.Overview,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		ReleaseDate:  m.ReleaseDate,
		VoteAverage:  m.VoteAverage,
		VoteCount:    m.VoteCount,
		Popularity:   m.Popularity,
		Genres:       genres,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

// fromMovieDomain maps a pure domain entity to the persistence model.
func fromMovieDomain(movie *entity.Movie) (*model.MovieModel, error) {
	encoded, err := json.Marshal(movie.Genres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode genres")
	}

	return &model.MovieModel{
		ID:           movie.ID,
		TMDBID:       movie.TMDBID,
		Title:        movie.Title,
		Overview:     movie.Overview,
		PosterPath:   movie.PosterPath,
		BackdropPath: movie.BackdropPath,
		ReleaseDate:  movie.ReleaseDate,
		VoteAverage:  movie.VoteAverage,
		VoteCount:    movie.VoteCount,
		Popularity:   movie.Popularity,
		Genres:       datatypes.JSON(encoded),
	}, nil
}
