package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/JdarlingGT/PortfolioJdbuild/internal/config"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/handler"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/llm"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/middleware"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/portfolio"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/repository/memory"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

const (
	serviceName = "portfolio-backend"
	version     = "1.0.0"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"chat_model", cfg.ChatModel,
	)

	if cfg.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set; chat requests will take the fallback path")
	}

	// Load static portfolio facts (embedded, read-only after this point)
	portfolioData, err := portfolio.Load()
	if err != nil {
		log.Fatalf("Failed to load portfolio data: %v", err)
	}
	logger.Info("portfolio data loaded",
		"employment_entries", len(portfolioData.Employment),
		"agency_projects", len(portfolioData.AgencyProjects),
	)

	// Create repositories. The catalog is seeded once here; it resets to the
	// seed set on every restart.
	projectRepo := memory.NewSeededDesignProjectRepository()

	// Create services
	projectService := service.NewProjectService(projectRepo, logger)
	completionClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.ChatModel)
	chatService := service.NewChatService(completionClient, portfolioData, logger)

	// Create handlers
	healthHandler := handler.NewHealthHandler(serviceName, version)
	projectHandler := handler.NewProjectHandler(projectService, logger)
	chatHandler := handler.NewChatHandler(chatService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns; wrong methods get 405)
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Check)

	mux.HandleFunc("POST /api/chat", chatHandler.Chat)

	mux.HandleFunc("GET /api/design-projects", projectHandler.ListProjects)
	mux.HandleFunc("GET /api/design-projects/featured", projectHandler.ListFeatured) // must come before {id}
	mux.HandleFunc("GET /api/design-projects/{id}", projectHandler.GetProject)

	// Build middleware chain (applied in reverse order: CORS → Recovery →
	// RequestLogger → Routes)
	var h http.Handler = mux
	h = middleware.RequestLogger(logger)(h)
	h = middleware.Recovery(logger)(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // covers the bounded provider call
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
