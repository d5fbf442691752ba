package handler

import (
	"net/http"

	"cinelog/internal/delivery/http/middleware"
	"cinelog/internal/delivery/http/response"
	"cinelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CollectionHandler holds dependencies for per-account collection handlers.
type CollectionHandler struct {
	uc usecase.CollectionUsecase
}

// NewCollectionHandler is the constructor for CollectionHandler, injected by Fx.
func NewCollectionHandler(uc usecase.CollectionUsecase) *CollectionHandler {
	return &CollectionHandler{uc: uc}
}

func (h *CollectionHandler) bindItemInput(c echo.Context) (*usecase.CollectionItemInput, error) {
	var input usecase.CollectionItemInput
	if err := c.Bind(&input); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid movie input")
	}
	if err := c.Validate(&input); err != nil {
		return nil, errors.WithStack(err)
	}

	accountID, err := middleware.AccountID(c)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	input.AccountID = accountID

	return &input, nil
}

func accountIDOrError(c echo.Context) (uuid.UUID, error) {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return uuid.Nil, errors.WithStack(err)
	}

	return accountID, nil
}

// AddFavorite marks a movie as a favorite of the caller.
func (h *CollectionHandler) AddFavorite(c echo.Context) error {
	input, err := h.bindItemInput(c)
	if err != nil || input == nil {
		return err
	}

	if err := h.uc.AddFavorite(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Movie added to favorites")
}

// RemoveFavorite removes a movie from the caller's favorites.
func (h *CollectionHandler) RemoveFavorite(c echo.Context) error {
	input, err := h.bindItemInput(c)
	if err != nil || input == nil {
		return err
	}

	if err := h.uc.RemoveFavorite(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Movie removed from favorites")
}

// ListFavorites returns the caller's favorite movies.
func (h *CollectionHandler) ListFavorites(c echo.Context) error {
	accountID, err := accountIDOrError(c)
	if err != nil {
		return err
	}

	movies, err := h.uc.ListFavorites(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movies, "Favorite movies retrieved")
}

// AddToWatchlist queues a movie on the caller's watchlist.
func (h *CollectionHandler) AddToWatchlist(c echo.Context) error {
	input, err := h.bindItemInput(c)
	if err != nil || input == nil {
		return err
	}

	if err := h.uc.AddToWatchlist(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Movie added to watchlist")
}

// RemoveFromWatchlist removes a movie from the caller's watchlist.
func (h *CollectionHandler) RemoveFromWatchlist(c echo.Context) error {
	input, err := h.bindItemInput(c)
	if err != nil || input == nil {
		return err
	}

	if err := h.uc.RemoveFromWatchlist(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Movie removed from watchlist")
}

// ListWatchlist returns the caller's watchlist movies.
func (h *CollectionHandler) ListWatchlist(c echo.Context) error {
	accountID, err := accountIDOrError(c)
	if err != nil {
		return err
	}

	movies, err := h.uc.ListWatchlist(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movies, "Watchlist retrieved")
}

// VoteRating inserts or replaces the caller's score for a movie.
func (h *CollectionHandler) VoteRating(c echo.Context) error {
	var input usecase.VoteRatingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	accountID, err := accountIDOrError(c)
	if err != nil {
		return err
	}
	input.AccountID = accountID

	if err := h.uc.VoteRating(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Rating stored")
}

// RatingList returns all ratings the caller has cast.
func (h *CollectionHandler) RatingList(c echo.Context) error {
	accountID, err := accountIDOrError(c)
	if err != nil {
		return err
	}

	ratings, err := h.uc.ListRatings(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ratings, "Ratings retrieved")
}

// AddReview appends a written review for a movie.
func (h *CollectionHandler) AddReview(c echo.Context) error {
	var input usecase.AddReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	accountID, err := accountIDOrError(c)
	if err != nil {
		return err
	}
	input.AccountID = accountID

	review, err := h.uc.AddReview(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review added")
}

// ListReviews returns all reviews for one movie.
func (h *CollectionHandler) ListReviews(c echo.Context) error {
	tmdbID, err := movieIDParam(c)
	if err != nil {
		return err
	}

	reviews, err := h.uc.ListReviews(c.Request().Context(), tmdbID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved")
}
