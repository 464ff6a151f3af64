/*
Copyright © 2025 hitesh0303
*/
package cmd

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hitesh0303/union-coders/config"
	"github.com/hitesh0303/union-coders/handler"
	"github.com/hitesh0303/union-coders/middleware"
	"github.com/hitesh0303/union-coders/service"
	"github.com/hitesh0303/union-coders/types"
	"github.com/hitesh0303/union-coders/utils"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the simplifier server",
	Long:  `Starts the HTTP server that handles document uploads and chat requests`,
	Run: func(cmd *cobra.Command, args []string) {

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		logger, err := utils.NewLogger(cfg.Debug)
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
		defer logger.Sync()

		// Initialize services
		documentService := service.NewDocumentService(types.DocumentServiceConfig{
			MaxChunkSize: cfg.Simplifier.MaxChunkSize,
			SubChunkSize: cfg.Simplifier.SubChunkSize,
		})

		aiService, err := newAIService(cfg)
		if err != nil {
			log.Fatalf("Failed to create AI service: %v", err)
		}

		simplifyService := service.NewSimplifyService(aiService, documentService, service.SimplifierOptions{
			MaxAttempts:       cfg.Simplifier.MaxAttempts,
			RequestsPerSecond: cfg.Simplifier.RequestsPerSecond,
		}, logger)
		wsService := service.NewWebSocketService(aiService, logger)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		healthHandler := handler.NewHealthHandler()
		simplifyHandler := handler.NewSimplifyHandler(simplifyService, cfg.Simplifier.MaxUploadBytes)
		chatHandler := handler.NewChatHandler(simplifyService)

		// Setup Gin router
		if !cfg.Debug {
			gin.SetMode(gin.ReleaseMode)
		}
		router := gin.New()
		router.Use(gin.Recovery())

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)
		router.Use(middleware.RequestLogger(logger))

		router.GET("/", healthHandler.HandleRoot)
		router.GET("/healthz", healthHandler.HandleHealthz)

		apiV1 := router.Group("/api/v1")
		{
			apiV1.POST("/simplify", simplifyHandler.HandleSimplify)
			apiV1.POST("/simplify/stream", simplifyHandler.HandleSimplifyStream)
			apiV1.POST("/chat", chatHandler.HandleChat)
		}

		router.GET("/ws/chat", func(c *gin.Context) {
			wsService.HandleChat(c.Writer, c.Request)
		})

		logger.Info("starting server", zap.String("port", cfg.Port), zap.String("provider", cfg.AIProvider))
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func newAIService(cfg *config.Config) (service.AIService, error) {
	switch cfg.AIProvider {
	case config.ProviderGemini:
		return service.NewGeminiService(cfg.GoogleAPIKeys(), cfg.Model)
	case config.ProviderOpenAI:
		return service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown ai_provider: %q", cfg.AIProvider)
	}
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
