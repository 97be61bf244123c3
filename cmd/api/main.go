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
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/api/middleware"
	"github.com/feral-file/ff-dao/internal/api/server"
	"github.com/feral-file/ff-dao/internal/api/shared/executor"
	"github.com/feral-file/ff-dao/internal/config"
	"github.com/feral-file/ff-dao/internal/governance"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/messaging"
	"github.com/feral-file/ff-dao/internal/providers/jetstream"
	temporal "github.com/feral-file/ff-dao/internal/providers/temporal"
	"github.com/feral-file/ff-dao/internal/ratelimit"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/treasury"
	"github.com/feral-file/ff-dao/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
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
	logger.InfoCtx(ctx, "Starting Feral File DAO API")

	governanceParams := governance.ParamsFromConfig(cfg.Governance)
	if err := governanceParams.Validate(); err != nil {
		logger.FatalCtx(ctx, "Invalid governance parameters", zap.Error(err))
	}
	treasuryParams := treasury.ParamsFromConfig(cfg.Treasury)
	if err := treasuryParams.Validate(); err != nil {
		logger.FatalCtx(ctx, "Invalid treasury parameters", zap.Error(err))
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if cfg.Database.ReadHost != "" {
		if err := store.RegisterReadReplica(db, postgres.Open(cfg.Database.ReadDSN())); err != nil {
			logger.FatalCtx(ctx, "Failed to register read replica", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Registered read replica", zap.String("read_host", cfg.Database.ReadHost))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()
	clock := adapter.NewClock()

	// Connect to NATS JetStream, events are dropped when it is not configured
	publisher := messaging.NewNopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: "ff-dao-api",
			PublishTimeout: cfg.NATS.PublishTimeout,
		}, adapter.NewNatsJetStream(), jsonAdapter, jcsAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, domain events will not be published")
	}
	defer publisher.Close()

	services := executor.NewServices(executor.ServicesConfig{
		Store:      dataStore,
		Publisher:  publisher,
		Clock:      clock,
		JSON:       jsonAdapter,
		JCS:        jcsAdapter,
		Governance: governanceParams,
		Treasury:   treasuryParams,
	})

	// Connect to Temporal when proposals are driven by the lifecycle workflow
	if cfg.LifecycleWorkflowEnabled {
		temporalClient, err := temporal.Dial(cfg.Temporal.HostPort, cfg.Temporal.Namespace)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
		}
		defer temporalClient.Close()
		logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))

		services.Lifecycle = workflows.NewLifecycleStarter(temporalClient, cfg.Temporal.GovernanceTaskQueue)
	}

	auth, err := middleware.NewAuthenticator(cfg.Auth)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize authentication", zap.Error(err))
	}

	// Rate limit per caller, shared across replicas when Redis is configured
	var redisClient adapter.RedisClient
	if cfg.Redis.Addr != "" {
		redisClient = adapter.NewRedisClient(adapter.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			_ = redisClient.Close()
		}()
	}
	limiter, err := ratelimit.NewLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize rate limiter", zap.Error(err))
	}

	serverConfig := server.Config{
		Debug:              cfg.Debug,
		Host:               cfg.Server.Host,
		Port:               cfg.Server.Port,
		ReadTimeout:        time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:       time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:        time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	}

	srv := server.New(serverConfig, executor.NewExecutor(services), clock, auth, limiter)

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
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	logger.Info("API server stopped")
}
