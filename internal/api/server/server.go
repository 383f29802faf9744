package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/assetchain/asset-registry/internal/api/middleware"
	"github.com/assetchain/asset-registry/internal/api/rest"
	"github.com/assetchain/asset-registry/internal/assets"
	"github.com/assetchain/asset-registry/internal/logger"
	"github.com/assetchain/asset-registry/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug           bool
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	CORSAllowOrigin string
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	profiles   store.ProfileStore
	assets     assets.Service
	history    rest.HistoryService
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, profiles store.ProfileStore, assetService assets.Service, history rest.HistoryService) *Server {
	return &Server{
		config:   cfg,
		profiles: profiles,
		assets:   assetService,
		history:  history,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(s.config.CORSAllowOrigin))

	restHandler := rest.NewHandler(s.profiles, s.assets, s.history)
	rest.SetupRoutes(router, restHandler)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
