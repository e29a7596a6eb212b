package routes

import (
	"mazingira-mind-backend/config"
	"mazingira-mind-backend/controllers"
	"mazingira-mind-backend/database"
	"mazingira-mind-backend/middleware"
	"mazingira-mind-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRoutes(router *gin.Engine, logger *zap.Logger) {
	cfg := config.Get()

	// External classifier capabilities; absent when no API key is
	// configured, in which case the pipeline runs on keyword heuristics.
	var sentimentClassifier services.SentimentClassifier
	var concernClassifier services.ConcernClassifier
	if cfg.HuggingFace.APIKey != "" {
		hfClient := services.NewHuggingFaceClient(cfg.HuggingFace, logger)
		sentimentClassifier = hfClient
		concernClassifier = hfClient
	} else {
		logger.Warn("no Hugging Face API key configured, running with keyword heuristics only")
	}

	// Initialize services
	pipeline := services.NewTriagePipeline(sentimentClassifier, concernClassifier, logger)
	chatbotService := services.NewChatbotService(pipeline, database.GetMongoDB(), logger)

	// Initialize controllers
	chatbotController := controllers.NewChatbotController(chatbotService)
	wsController := controllers.NewWebSocketController(chatbotService, logger)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		// Chat endpoint consumed by the web frontend
		public.POST("/chat", chatbotController.HandleChat)
		public.GET("/chat/history", chatbotController.GetChatHistory)

		// WebSocket for real-time chat
		public.GET("/ws", wsController.HandleWebSocket)
	}

	// Admin routes behind the shared-key middleware
	admin := router.Group("/api/admin")
	admin.Use(middleware.RequireAdminKey())
	{
		admin.GET("/stats", chatbotController.GetStats)
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})
}
