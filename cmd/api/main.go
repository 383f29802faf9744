package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/assetchain/asset-registry/internal/adapter"
	"github.com/assetchain/asset-registry/internal/api/server"
	"github.com/assetchain/asset-registry/internal/assets"
	"github.com/assetchain/asset-registry/internal/config"
	"github.com/assetchain/asset-registry/internal/logger"
	"github.com/assetchain/asset-registry/internal/metadata"
	"github.com/assetchain/asset-registry/internal/provenance"
	"github.com/assetchain/asset-registry/internal/providers/ethereum"
	"github.com/assetchain/asset-registry/internal/store"
	"github.com/assetchain/asset-registry/internal/uri"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Asset Registry API")

	// Connect to MongoDB
	mongoClient, err := store.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.ConnectTimeout)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	db := mongoClient.Database(cfg.Mongo.Database)
	if err := store.EnsureIndexes(ctx, db); err != nil {
		logger.FatalCtx(ctx, "Failed to ensure MongoDB indexes", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	profiles := store.NewMongoStore(db, adapter.NewClock())

	// Connect to the Ethereum node and bind the asset contract
	dialer := adapter.NewEthClientDialer()
	ethClient, err := dialer.Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Ethereum node", zap.Error(err))
	}

	contract, err := ethereum.NewClient(cfg.Ethereum.ContractAddress, ethClient)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create asset contract client", zap.Error(err))
	}
	defer contract.Close()

	if err := contract.VerifyChainID(ctx, cfg.Ethereum.ChainID); err != nil {
		logger.FatalCtx(ctx, "Chain id mismatch", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to Ethereum node",
		zap.Uint64("chainID", cfg.Ethereum.ChainID),
		zap.String("contract", cfg.Ethereum.ContractAddress),
	)

	// Wire the read services
	httpClient := adapter.NewHTTPClient(cfg.URI.HTTPTimeout)
	uriResolver := uri.NewResolver(cfg.URI.IPFSGateways, httpClient)
	metadataResolver := metadata.NewResolver(uriResolver, httpClient)
	assetService := assets.NewService(ctx, contract, metadataResolver, cfg.Worker.PoolSize, cfg.Worker.QueueSize)
	reconstructor := provenance.NewReconstructor(contract, provenance.Config{
		LookbackBlocks: cfg.Ethereum.LookbackBlocks,
		MaxBlockRange:  cfg.Ethereum.MaxBlockRange,
	})

	// Create server config
	serverConfig := server.Config{
		Debug:           cfg.Debug,
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:    time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:     time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSAllowOrigin: cfg.Server.CORSAllowOrigin,
	}

	// Create and start server
	srv := server.New(serverConfig, profiles, assetService, reconstructor)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
