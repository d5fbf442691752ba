package handler

import (
	"net/http"

	"cinelog/internal/delivery/http/response"
	"cinelog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AIHandler holds dependencies for AI search and navigation handlers.
type AIHandler struct {
	uc usecase.AIUsecase
}

// NewAIHandler is the constructor for AIHandler, injected by Fx.
func NewAIHandler(uc usecase.AIUsecase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Search runs a semantic search over the movie collection.
func (h *AIHandler) Search(c echo.Context) error {
	var input usecase.AISearchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	hits, err := h.uc.Search(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, hits, "AI search results retrieved")
}

// Navigate maps a natural-language phrase to a frontend route.
func (h *AIHandler) Navigate(c echo.Context) error {
	var input usecase.AINavigateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid navigation input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Navigate(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Navigation resolved")
}
