package impl

import (
	"context"
	"testing"

	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/service"
	mockSvc "cinelog/internal/mocks/service"
	"cinelog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// aiServiceFixtures holds all test dependencies for AI service tests.
type aiServiceFixtures struct {
	service   usecase.AIUsecase
	retriever *mockSvc.MockRetriever
}

func createTestAIService(t *testing.T) aiServiceFixtures {
	retriever := mockSvc.NewMockRetriever(t)

	svc := NewAIService(AIServiceParams{
		Retriever: retriever,
		Logger:    newDiscardLogger(),
	})

	return aiServiceFixtures{
		service:   svc,
		retriever: retriever,
	}
}

func TestAIService_Search_AppliesDefaults(t *testing.T) {
	fx := createTestAIService(t)

	ctx := context.Background()
	hits := []service.RetrievedMovie{
		{TMDBID: 100, Title: "First", Score: 0.92},
	}

	fx.retriever.EXPECT().
		SearchMovies(ctx, "space opera", defaultAISearchField, defaultAISearchLimit).
		Return(hits, nil)

	result, err := fx.service.Search(ctx, &usecase.AISearchInput{Keyword: "space opera"})

	require.NoError(t, err)
	assert.Equal(t, hits, result)
}

func TestAIService_Search_EmptyResultIsNotAnError(t *testing.T) {
	fx := createTestAIService(t)

	ctx := context.Background()

	fx.retriever.EXPECT().
		SearchMovies(ctx, "nothing like this", "overview", 5).
		Return(nil, nil)

	result, err := fx.service.Search(ctx, &usecase.AISearchInput{Keyword: "nothing like this", Field: "overview", Limit: 5})

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestAIService_Search_RetrieverFailure(t *testing.T) {
	fx := createTestAIService(t)

	ctx := context.Background()

	fx.retriever.EXPECT().
		SearchMovies(ctx, "space opera", defaultAISearchField, defaultAISearchLimit).
		Return(nil, assert.AnError)

	result, err := fx.service.Search(ctx, &usecase.AISearchInput{Keyword: "space opera"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRetrievalFailed)
	assert.Nil(t, result)
}

func TestAIService_Navigate_Success(t *testing.T) {
	fx := createTestAIService(t)

	ctx := context.Background()
	expected := &service.NavigateResult{
		Route:  "/movie/100",
		Params: map[string]any{"tmdbId": int64(100)},
	}

	fx.retriever.EXPECT().
		Navigate(ctx, "show me the first movie").
		Return(expected, nil)

	result, err := fx.service.Navigate(ctx, &usecase.AINavigateInput{Keyword: "show me the first movie"})

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestAIService_Navigate_RetrieverFailure(t *testing.T) {
	fx := createTestAIService(t)

	ctx := context.Background()

	fx.retriever.EXPECT().
		Navigate(ctx, "show me the first movie").
		Return(nil, assert.AnError)

	result, err := fx.service.Navigate(ctx, &usecase.AINavigateInput{Keyword: "show me the first movie"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRetrievalFailed)
	assert.Nil(t, result)
}
