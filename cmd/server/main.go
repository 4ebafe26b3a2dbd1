package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inboxpilot/warmup/internal/handlers"
	"github.com/inboxpilot/warmup/internal/middleware"
	"github.com/inboxpilot/warmup/internal/repositories"
	"github.com/inboxpilot/warmup/internal/services"
	"github.com/inboxpilot/warmup/pkg/config"
	"github.com/inboxpilot/warmup/pkg/database"
	"github.com/inboxpilot/warmup/pkg/logger"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gin.SetMode(config.AppConfig.Server.Mode)
	logger.Init()

	// Initialize database
	if err := database.Init(config.AppConfig.Database.Path); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	accountRepo := repositories.NewEmailAccountRepository(database.DB)
	taskRepo := repositories.NewWarmupTaskRepository(database.DB)
	accountService := services.NewEmailAccountService(accountRepo, config.AppConfig.Store)
	rosterService := services.NewRosterService(accountService)
	actionService := services.NewActionService()
	taskService := services.NewWarmupTaskService(taskRepo, accountRepo, actionService)
	statisticsService := services.NewStatisticsService(accountRepo, taskRepo)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	setupRoutes(router, accountService, rosterService, actionService, taskService, statisticsService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Server stopped")
}

func setupRoutes(router *gin.Engine, accountService *services.EmailAccountService, rosterService *services.RosterService, actionService *services.ActionService, taskService *services.WarmupTaskService, statisticsService *services.StatisticsService) {
	// Initialize handlers
	accountHandler := handlers.NewEmailAccountHandler(accountService, rosterService)
	actionHandler := handlers.NewActionHandler(actionService)
	taskHandler := handlers.NewWarmupTaskHandler(taskService)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsService)
	healthHandler := handlers.NewHealthHandler()

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	api := router.Group("/api")

	accounts := api.Group("/email-accounts")
	{
		accounts.GET("", accountHandler.ListAccounts)
		accounts.POST("", accountHandler.CreateAccount)

		// Batch and roster routes are registered before /:id
		accounts.POST("/batch", accountHandler.BatchUpsert)
		accounts.DELETE("/batch", accountHandler.BatchDelete)
		accounts.POST("/import", accountHandler.ImportRoster)
		accounts.GET("/export", accountHandler.ExportRoster)
		accounts.GET("/export/xlsx", accountHandler.ExportRosterXLSX)

		accounts.GET("/:id", accountHandler.GetAccount)
		accounts.PATCH("/:id", accountHandler.UpdateAccount)
		accounts.DELETE("/:id", accountHandler.DeleteAccount)
	}

	actions := api.Group("/actions")
	{
		actions.GET("", actionHandler.ListActions)
		actions.GET("/:id", actionHandler.GetAction)
	}

	tasks := api.Group("/tasks")
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.POST("/:id/complete", taskHandler.CompleteTask)
	}

	api.GET("/statistics", statisticsHandler.GetStatistics)
}
