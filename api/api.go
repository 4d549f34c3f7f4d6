package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cadenzahq/cadenza/pkg/engine"
)

// Server is the API server exposing the analysis engine over HTTP
type Server struct {
	config Config
	engine *engine.Engine
	logger *zap.Logger
	app    *fiber.App
}

// NewServer creates a new API server.
// The engine is injected so the CLI and server can share one session.
func NewServer(config Config, eng *engine.Engine, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config: config,
		engine: eng,
		logger: logger,
		app:    app,
	}

	app.Get("/ping", s.handlePing)
	app.Post("/analyze", s.handleAnalyze)
	app.Post("/recommend", s.handleRecommend)
	app.Post("/actions", s.handleRecordAction)
	app.Get("/rules/search", s.handleSearchRules)
	app.Get("/rules/category/:category", s.handleRulesByCategory)
	app.Get("/preferences/stats", s.handlePreferenceStats)
	app.Delete("/preferences", s.handleClearPreferences)

	return s
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server",
		zap.String("listen", s.config.ListenAddr),
	)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
