package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"taskboard-api/internal/config"
	"taskboard-api/internal/database"
	"taskboard-api/internal/handlers"
	"taskboard-api/internal/middleware"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/services"
	"taskboard-api/internal/token"
)

func main() {
	logger := logrus.New()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatalf("Invalid log level %q: %v", cfg.LogLevel, err)
	}
	logger.SetLevel(level)

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	ctx := context.Background()
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Fatalf("Failed to create indexes: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenIssuer, cfg.TokenExpiry)

	authService := services.NewAuthService(userRepo, boardRepo, taskRepo, tokens)
	boardService := services.NewBoardService(boardRepo, userRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo, boardRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, tokens, cfg)
	boardHandler := handlers.NewBoardHandler(boardService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Transaction(logger))
	r.Use(middleware.ErrorHandler(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "PUT", "PATCH", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RateLimit(
		rate.Every(cfg.RateLimitWindow/time.Duration(cfg.RateLimitBurst)),
		cfg.RateLimitBurst,
	))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Task board API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)

		// Everything else requires the credential cookie
		protected := api.Group("")
		protected.Use(middleware.RequireAuth(tokens))
		{
			protected.GET("/get/user/details", authHandler.GetUserDetails)
			protected.POST("/update/user", authHandler.UpdateLastVisitedBoard)
			protected.POST("/logout", authHandler.Logout)
			protected.POST("/remove/user/:userId", authHandler.RemoveUser)

			protected.POST("/boards", boardHandler.CreateBoard)
			protected.GET("/boards/:boardId", boardHandler.GetBoard)
			protected.PUT("/boards/:boardId", boardHandler.UpdateBoard)
			protected.DELETE("/boards/:boardId", boardHandler.DeleteBoard)

			protected.POST("/tasks/create", taskHandler.CreateTask)
			protected.PUT("/tasks/:taskId", taskHandler.UpdateTask)
			protected.DELETE("/tasks/:taskId", taskHandler.DeleteTask)
		}
	}

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ServerTimeout,
		WriteTimeout: cfg.ServerTimeout,
	}
	logger.Infof("Server starting on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
