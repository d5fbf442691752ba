package impl

import (
	"context"
	"log/slog"

	deliverycontext "cinelog/internal/delivery/context"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/service"
	"cinelog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultAISearchLimit = 10
	defaultAISearchField = "title"
)

// aiService implements the AIUsecase interface by proxying the retrieval
// microservice.
type aiService struct {
	retriever service.Retriever
	logger    *slog.Logger
}

// AIServiceParams holds dependencies for aiService, injected by Fx.
type AIServiceParams struct {
	fx.In

	Retriever service.Retriever
	Logger    *slog.Logger
}

// NewAIService is the constructor for aiService.
func NewAIService(params AIServiceParams) usecase.AIUsecase {
	return &aiService{
		retriever: params.Retriever,
		logger:    params.Logger,
	}
}

func (srv *aiService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search returns semantically matching movies. No matches is an empty
// list, not an error.
func (srv *aiService) Search(ctx context.Context, input *usecase.AISearchInput) ([]service.RetrievedMovie, error) {
	field := input.Field
	if field == "" {
		field = defaultAISearchField
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultAISearchLimit
	}

	hits, err := srv.retriever.SearchMovies(ctx, input.Keyword, field, limit)
	if err != nil {
		srv.log(ctx).Error("Semantic search failed", slog.String("field", field), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRetrievalFailed, "semantic search failed")
	}

	if hits == nil {
		hits = []service.RetrievedMovie{}
	}

	return hits, nil
}

// Navigate maps a phrase to a frontend route.
func (srv *aiService) Navigate(ctx context.Context, input *usecase.AINavigateInput) (*service.NavigateResult, error) {
	result, err := srv.retriever.Navigate(ctx, input.Keyword)
	if err != nil {
		srv.log(ctx).Error("Navigation query failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRetrievalFailed, "navigation query failed")
	}

	return result, nil
}
