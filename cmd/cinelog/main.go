package main

import (
	"context"
	"log/slog"
	"os"

	"cinelog/config"
	"cinelog/internal/delivery"
	"cinelog/internal/delivery/http"
	"cinelog/internal/delivery/http/middleware"
	"cinelog/internal/delivery/http/router/handler"
	"cinelog/internal/domain/service"
	"cinelog/internal/infra/auth"
	"cinelog/internal/infra/auth/google"
	logs "cinelog/internal/infra/log"
	"cinelog/internal/infra/mail"
	"cinelog/internal/infra/metrics"
	"cinelog/internal/infra/persistence/postgres"
	"cinelog/internal/infra/rag"
	"cinelog/internal/infra/tmdb"
	"cinelog/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			warmGenreCache,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewSessionRepository,
			postgres.NewMovieRepository,
			postgres.NewCollectionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewVerifier,
			mail.NewSMTPMailer,
			tmdb.NewClient,
			tmdb.NewGenreCache,
			rag.NewClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewVerificationService,
			impl.NewMovieService,
			impl.NewCollectionService,
			impl.NewAIService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewVerificationHandler,
			handler.NewMovieHandler,
			handler.NewCollectionHandler,
			handler.NewAIHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// warmGenreCache loads the provider's genre mapping once at startup.
// A failure is tolerated; unresolved ids render as "Unknown" until the
// next refresh succeeds.
func warmGenreCache(lc fx.Lifecycle, resolver service.GenreResolver, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := resolver.Refresh(ctx); err != nil {
				logger.Warn("Failed to warm genre cache", slog.Any("error", err))
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
