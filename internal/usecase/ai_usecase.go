package usecase

import (
	"context"

	"cinelog/internal/domain/service"
)

// AISearchInput carries a natural-language search query.
type AISearchInput struct {
	Keyword string `query:"key_word" validate:"required,min=3,max=5000"`
	Field   string `query:"field" validate:"omitempty,oneof=title overview"`
	Limit   int    `query:"limit" validate:"omitempty,min=2,max=100"`
}

// AINavigateInput carries a natural-language navigation phrase.
type AINavigateInput struct {
	Keyword string `query:"key_word" validate:"required,min=1,max=250"`
}

// AIUsecase proxies the LLM retrieval microservice for semantic search
// and navigation.
type AIUsecase interface {
	// Search returns semantically matching movies. No matches is an empty
	// list, not an error.
	Search(ctx context.Context, input *AISearchInput) ([]service.RetrievedMovie, error)

	// Navigate maps a phrase to a frontend route.
	Navigate(ctx context.Context, input *AINavigateInput) (*service.NavigateResult, error)
}
