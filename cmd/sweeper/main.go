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
	"github.com/feral-file/ff-dao/internal/api/shared/executor"
	"github.com/feral-file/ff-dao/internal/config"
	"github.com/feral-file/ff-dao/internal/governance"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/messaging"
	"github.com/feral-file/ff-dao/internal/providers/jetstream"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/sweeper"
	"github.com/feral-file/ff-dao/internal/treasury"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	runOnce    = flag.String("run", "", "Run the named job once and exit")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper")

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
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()
	clock := adapter.NewClock()

	publisher := messaging.NewNopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: "ff-dao-sweeper",
			PublishTimeout: cfg.NATS.PublishTimeout,
		}, adapter.NewNatsJetStream(), jsonAdapter, jcsAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
	}
	defer publisher.Close()

	services := executor.NewServices(executor.ServicesConfig{
		Store:      store.NewPGStore(db),
		Publisher:  publisher,
		Clock:      clock,
		JSON:       jsonAdapter,
		JCS:        jcsAdapter,
		Governance: governanceParams,
		Treasury:   treasuryParams,
	})

	// An empty schedule disables the job
	jobs := cfg.Jobs
	candidates := []sweeper.Schedule{
		{Spec: jobs.ProposalDeadlines, Job: sweeper.NewProposalDeadlinesJob(services.Proposals, jobs.BatchSize)},
		{Spec: jobs.TreasurySettlement, Job: sweeper.NewTreasurySettlementJob(services.Approvals, services.Breaker, treasuryParams, jobs.BatchSize)},
		{Spec: jobs.TokenLocks, Job: sweeper.NewTokenLocksJob(services.Tokens, jobs.BatchSize)},
		{Spec: jobs.TreasuryMetrics, Job: sweeper.NewTreasuryMetricsJob(services.Ledger, services.Strategies)},
	}
	var schedules []sweeper.Schedule
	for _, s := range candidates {
		if s.Spec == "" && *runOnce != s.Job.Name() {
			logger.InfoCtx(ctx, "Sweeper job disabled", zap.String("job", s.Job.Name()))
			continue
		}
		schedules = append(schedules, s)
	}

	jobSweeper := sweeper.NewJobSweeper(sweeper.JobSweeperConfig{
		WorkerPoolSize: jobs.Worker.WorkerPoolSize,
		QueueSize:      jobs.Worker.WorkerQueueSize,
		JobTimeout:     jobs.JobTimeout,
	}, clock, schedules...)

	if *runOnce != "" {
		if err := sweeper.RunJob(ctx, jobSweeper, *runOnce); err != nil {
			logger.FatalCtx(ctx, "Sweeper job failed", zap.String("job", *runOnce), zap.Error(err))
		}
		return
	}

	logger.InfoCtx(ctx, "Initialized job sweeper",
		zap.Int("jobs", len(schedules)),
		zap.Int("worker_pool_size", jobs.Worker.WorkerPoolSize),
	)

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := jobSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweeper
	cancel()

	// Give running jobs time to finish
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := jobSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
