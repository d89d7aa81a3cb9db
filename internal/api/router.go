package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sylee999/minifeed/internal/api/handler"
	"github.com/sylee999/minifeed/internal/api/middleware"
	"github.com/sylee999/minifeed/internal/core/service"
	"github.com/sylee999/minifeed/internal/infrastructure/cache"
	"github.com/sylee999/minifeed/internal/infrastructure/store"
)

// RouterConfig carries the knobs the HTTP layer needs.
type RouterConfig struct {
	JWTSecret    string
	SessionTTL   time.Duration
	FeedCacheTTL time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil: the popular-feed cache is then disabled.
func NewRouter(storeClient *store.Client, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("minifeed"))
	e.Use(middleware.Session(cfg.JWTSecret))

	// --- Dependencies ---
	postRepo := store.NewPostRepository(storeClient)
	userRepo := store.NewUserRepository(storeClient)

	var feedCache service.FeedCache
	if rdb != nil {
		feedCache = cache.NewFeedCache(rdb, cfg.FeedCacheTTL)
	}

	feedService := service.NewFeedService(postRepo, userRepo, feedCache, log)
	bookmarkService := service.NewBookmarkService(postRepo, userRepo, log)
	searchService := service.NewSearchService(postRepo, userRepo, log)
	postService := service.NewPostService(postRepo, userRepo, log)
	userService := service.NewUserService(userRepo, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.SessionTTL, log)

	authHandler := handler.NewAuthHandler(authService, userService, cfg.SessionTTL)
	feedHandler := handler.NewFeedHandler(feedService)
	postHandler := handler.NewPostHandler(postService, bookmarkService)
	userHandler := handler.NewUserHandler(userService)
	searchHandler := handler.NewSearchHandler(searchService)

	requireUser := middleware.RequireUser()

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, requireUser)

	// --- Feed routes ---
	e.GET("/v1/feed", feedHandler.Home)
	e.GET("/v1/feed/popular", feedHandler.Popular)

	// --- Post routes ---
	e.GET("/v1/posts/:id", postHandler.Get)
	e.POST("/v1/posts", postHandler.Create, requireUser)
	e.PUT("/v1/posts/:id", postHandler.Update, requireUser)
	e.DELETE("/v1/posts/:id", postHandler.Delete, requireUser)
	e.POST("/v1/posts/:id/bookmark", postHandler.ToggleBookmark, requireUser)

	// --- User routes ---
	e.GET("/v1/users/:id", userHandler.Get)
	e.GET("/v1/users/:id/posts", postHandler.ListByUser)
	e.PUT("/v1/users/me", userHandler.UpdateProfile, requireUser)
	e.DELETE("/v1/users/me", userHandler.DeleteAccount, requireUser)
	e.POST("/v1/users/:id/follow", userHandler.Follow, requireUser)
	e.DELETE("/v1/users/:id/follow", userHandler.Unfollow, requireUser)

	// --- Search routes ---
	e.GET("/v1/search/posts", searchHandler.Posts)
	e.GET("/v1/search/users", searchHandler.Users)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(storeClient, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
