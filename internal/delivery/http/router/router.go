// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cinelog/internal/delivery/http/middleware"
	"cinelog/internal/delivery/http/router/handler"
	"cinelog/internal/domain/entity"
	"cinelog/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	VerificationHandler *handler.VerificationHandler
	MovieHandler        *handler.MovieHandler
	CollectionHandler   *handler.CollectionHandler
	AIHandler           *handler.AIHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	verificationHandler *handler.VerificationHandler
	movieHandler        *handler.MovieHandler
	collectionHandler   *handler.CollectionHandler
	aiHandler           *handler.AIHandler
	authMiddleware      *middleware.AuthMiddleware
	metrics             *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		verificationHandler: params.VerificationHandler,
		movieHandler:        params.MovieHandler,
		collectionHandler:   params.CollectionHandler,
		aiHandler:           params.AIHandler,
		authMiddleware:      params.AuthMiddleware,
		metrics:             params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.metrics.Registry, promhttp.HandlerOpts{})))

	authenticated := r.authMiddleware.Authenticate

	userGroup := e.Group("/user")
	{
		userGroup.POST("/register", r.accountHandler.Register)
		userGroup.POST("/login", r.accountHandler.Login)
		userGroup.GET("/logout", r.accountHandler.Logout, authenticated)
		userGroup.GET("/profile", r.accountHandler.Profile, authenticated)
		userGroup.POST("/invoke-new-tokens", r.accountHandler.InvokeNewTokens, authenticated)
		userGroup.POST("/google/verify", r.accountHandler.GoogleVerify)
		userGroup.GET("/google/callback", r.accountHandler.GoogleCallback)

		userGroup.POST("/vote-rating", r.collectionHandler.VoteRating, authenticated)
		userGroup.GET("/rating-list", r.collectionHandler.RatingList, authenticated)
		userGroup.POST("/add-review", r.collectionHandler.AddReview, authenticated)
		userGroup.POST("/add-to-favorite", r.collectionHandler.AddFavorite, authenticated)
		userGroup.DELETE("/remove-from-favorite", r.collectionHandler.RemoveFavorite, authenticated)
		userGroup.GET("/favorite-movies", r.collectionHandler.ListFavorites, authenticated)
		userGroup.POST("/add-to-watchlist", r.collectionHandler.AddToWatchlist, authenticated)
		userGroup.DELETE("/remove-from-watchlist", r.collectionHandler.RemoveFromWatchlist, authenticated)
		userGroup.GET("/watchlist-movies", r.collectionHandler.ListWatchlist, authenticated)
	}

	verifyGroup := e.Group("/verify")
	{
		verifyGroup.POST("/send-activate-email", r.verificationHandler.SendActivationEmail)
		verifyGroup.POST("/confirm-activate-otp", r.verificationHandler.ConfirmActivationOTP)
		verifyGroup.POST("/send-reset-pass-email", r.verificationHandler.SendResetEmail)
		verifyGroup.POST("/confirm-reset-pass-otp", r.verificationHandler.ConfirmResetOTP)
		verifyGroup.POST("/reset-password", r.verificationHandler.ResetPassword, authenticated)
	}

	movieGroup := e.Group("/movie")
	{
		movieGroup.GET("/trending/today", r.movieHandler.TrendingToday)
		movieGroup.GET("/trending/thisweek", r.movieHandler.TrendingThisWeek)
		movieGroup.GET("/popular", r.movieHandler.Popular)
		movieGroup.GET("/lastest-trailer", r.movieHandler.LatestTrailers)
		movieGroup.GET("/search", r.movieHandler.Search)
		movieGroup.GET("/:movie_id", r.movieHandler.Detail)
		movieGroup.GET("/:movie_id/recommendations", r.movieHandler.Recommendations)
		movieGroup.GET("/:movie_id/reviews", r.collectionHandler.ListReviews)

		movieGroup.POST("/refresh-genres", r.movieHandler.RefreshGenres,
			authenticated, r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	}

	aiGroup := e.Group("/ai", authenticated)
	{
		aiGroup.GET("/search", r.aiHandler.Search)
		aiGroup.GET("/navigate", r.aiHandler.Navigate)
	}
}
