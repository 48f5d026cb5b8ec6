package router

import (
	"github.com/gin-gonic/gin"

	"reelshelf/internal/handler"
	"reelshelf/internal/middleware"
	"reelshelf/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	corsOrigins []string,
	authH *handler.AuthHandler,
	movieH *handler.MovieHandler,
	shareH *handler.ShareHandler,
	importH *handler.ImportHandler,
	watchlistH *handler.WatchlistHandler,
	posterH *handler.PosterHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)
	auth.POST("/social-login", authH.SocialLogin)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Own collection
	movies := protected.Group("/movies")
	movies.GET("", movieH.List)
	movies.POST("", movieH.Create)
	movies.PUT("/:id", movieH.Update)
	movies.DELETE("/:id", movieH.Delete)
	movies.POST("/import", importH.Import)
	movies.GET("/import/template", importH.Template)
	movies.POST("/:id/poster", posterH.Upload)

	// Sharing (as owner)
	shares := protected.Group("/shares")
	shares.POST("", shareH.Share)
	shares.GET("", shareH.ListGrants)
	shares.DELETE("/:userId", shareH.Revoke)

	// Collections shared with the caller
	shared := protected.Group("/shared")
	shared.GET("", shareH.ListSharedWithMe)
	shared.PUT("/movies/:id", shareH.UpdateShared)

	// Watchlist
	watchlist := protected.Group("/watchlist")
	watchlist.GET("", watchlistH.List)
	watchlist.POST("", watchlistH.Add)
	watchlist.DELETE("/:id", watchlistH.Remove)
	watchlist.POST("/:id/move", watchlistH.MoveToCollection)

	return r
}
