package main

import (
	"context"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/horizonhq/horizon-api/internal/config"
	"github.com/horizonhq/horizon-api/internal/constants"
	"github.com/horizonhq/horizon-api/internal/handlers"
	"github.com/horizonhq/horizon-api/internal/middleware"
	"github.com/horizonhq/horizon-api/internal/services"
	"github.com/horizonhq/horizon-api/internal/session"
	"github.com/horizonhq/horizon-api/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Open the persistence backend chosen at startup
	store, err := openStore(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open storage backend")
	}
	logrus.WithField("backend", cfg.StorageBackend).Info("Storage backend ready")

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware. Redis when configured, signed cookies
	// otherwise.
	sessionStore, err := newSessionStore(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create session store")
	}
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	// Initialize AI mentor when a key is configured
	var mentor *services.MentorService
	if cfg.OpenAIAPIKey != "" {
		mentor = services.NewMentorService(cfg.OpenAIAPIKey)
	}

	// Initialize services
	snapshots := session.NewManager(store)
	authService := services.NewAuthService(store)
	dreamService := services.NewDreamService(store, snapshots)
	goalService := services.NewGoalService(store, dreamService, snapshots)
	logService := services.NewLogService(store, snapshots)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, snapshots)
	dreamHandler := handlers.NewDreamHandler(dreamService, goalService, mentor)
	goalHandler := handlers.NewGoalHandler(goalService)
	logHandler := handlers.NewLogHandler(logService)
	dashboardHandler := handlers.NewDashboardHandler(snapshots)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Horizon API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/guest", authHandler.Guest)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Quotes (public)
		api.GET("/quotes/random", handlers.RandomQuote)

		// Dream routes (protected)
		dreams := api.Group("/dreams")
		dreams.Use(middleware.RequireAuth())
		{
			dreams.GET("", dreamHandler.ListDreams)
			dreams.POST("", dreamHandler.CreateDream)
			dreams.PATCH("/:id", dreamHandler.UpdateDream)
			dreams.POST("/:id/archive", dreamHandler.ArchiveDream)
			dreams.GET("/:id/goals", middleware.RequireDreamAccess(dreamService), dreamHandler.ListDreamGoals)
			dreams.POST("/:id/goals", middleware.RequireDreamAccess(dreamService), dreamHandler.CreateDreamGoal)
			dreams.POST("/:id/goals/suggest", middleware.RequireDreamAccess(dreamService), dreamHandler.SuggestGoals)
		}

		// Goal routes (protected)
		goals := api.Group("/goals")
		goals.Use(middleware.RequireAuth())
		{
			goals.GET("", goalHandler.ListGoals)
			goals.PATCH("/:id/progress", goalHandler.UpdateGoalProgress)
		}

		// Action log routes (protected)
		logs := api.Group("/logs")
		logs.Use(middleware.RequireAuth())
		{
			logs.GET("", logHandler.ListLogs)
			logs.POST("", logHandler.CreateLog)
		}

		// Aggregated views (protected)
		api.GET("/dashboard", middleware.RequireAuth(), dashboardHandler.GetDashboard)
		api.GET("/session/snapshot", middleware.RequireAuth(), dashboardHandler.GetSnapshot)
	}

	// Start server
	logrus.WithField("port", cfg.Port).Info("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}

// openStore builds the persistence gateway named in STORAGE_BACKEND.
// The memory backend is seeded with demo data so a fresh checkout has
// something to show.
func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		return storage.OpenFileStore(cfg.FileStorePath)
	case config.BackendDatabase:
		return storage.OpenGorm(cfg)
	case config.BackendMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return storage.OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		store := storage.NewMemoryStore()
		if _, err := storage.SeedDemoData(context.Background(), store); err != nil {
			return nil, err
		}
		return store, nil
	}
}

// newSessionStore prefers Redis so sessions survive restarts; without a
// Redis host it falls back to signed cookie sessions.
func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	isProduction := cfg.GinMode == "release"
	opts := sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	}

	if cfg.RedisHost == "" {
		store := cookie.NewStore([]byte(cfg.SessionSecret))
		store.Options(opts)
		return store, nil
	}

	store, err := redisStore.NewStore(
		10,
		"tcp",
		cfg.RedisHost+":"+cfg.RedisPort,
		"",
		"",
		[]byte(cfg.SessionSecret),
	)
	if err != nil {
		return nil, err
	}
	store.Options(opts)
	return store, nil
}
