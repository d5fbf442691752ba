package handler

import (
	"net/http"
	"strconv"

	"cinelog/internal/delivery/http/response"
	"cinelog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MovieHandler holds dependencies for catalog handlers.
type MovieHandler struct {
	uc usecase.MovieUsecase
}

// NewMovieHandler is the constructor for MovieHandler, injected by Fx.
func NewMovieHandler(uc usecase.MovieUsecase) *MovieHandler {
	return &MovieHandler{uc: uc}
}

// TrendingToday lists movies trending over the last day.
func (h *MovieHandler) TrendingToday(c echo.Context) error {
	movies, err := h.uc.TrendingToday(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movies, "Trending movies retrieved")
}

// TrendingThisWeek lists movies trending over the last week.
func (h *MovieHandler) TrendingThisWeek(c echo.Context) error {
	movies, err := h.uc.TrendingThisWeek(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movies, "Trending movies retrieved")
}

// Popular lists one page of the popularity chart.
func (h *MovieHandler) Popular(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))

	movies, err := h.uc.Popular(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movies, "Popular movies retrieved")
}

// LatestTrailers pairs now-playing movies with their trailers.
func (h *MovieHandler) LatestTrailers(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	trailers, err := h.uc.LatestTrailers(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, trailers, "Latest trailers retrieved")
}

// Search runs a paginated title search over the catalog.
func (h *MovieHandler) Search(c echo.Context) error {
	var input usecase.SearchMoviesInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Search(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Search results retrieved")
}

// Detail returns one movie by its provider id.
func (h *MovieHandler) Detail(c echo.Context) error {
	tmdbID, err := movieIDParam(c)
	if err != nil {
		return err
	}

	movie, err := h.uc.Detail(c.Request().Context(), tmdbID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movie, "Movie retrieved")
}

// Recommendations lists movies sharing genres with the given one.
func (h *MovieHandler) Recommendations(c echo.Context) error {
	tmdbID, err := movieIDParam(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	movies, err := h.uc.Recommendations(c.Request().Context(), tmdbID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movies, "Recommendations retrieved")
}

// RefreshGenres reloads the genre cache from the metadata provider.
func (h *MovieHandler) RefreshGenres(c echo.Context) error {
	if err := h.uc.RefreshGenres(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Genre cache refreshed")
}

func movieIDParam(c echo.Context) (int64, error) {
	tmdbID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil || tmdbID < 1 {
		return 0, response.BadRequest(c, "INVALID_INPUT", "movie_id must be a positive integer")
	}

	return tmdbID, nil
}
