package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/config"
	"github.com/feral-file/ff-dao/internal/governance"
	"github.com/feral-file/ff-dao/internal/journal"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/messaging"
	"github.com/feral-file/ff-dao/internal/providers/jetstream"
	temporal "github.com/feral-file/ff-dao/internal/providers/temporal"
	"github.com/feral-file/ff-dao/internal/store"
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
	cfg, err := config.LoadWorkerGovernanceConfig(*configFile, *envPath)
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
			"service": "worker-governance",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Worker Governance")

	params := governance.ParamsFromConfig(cfg.Governance)
	if err := params.Validate(); err != nil {
		logger.FatalCtx(ctx, "Invalid governance parameters", zap.Error(err))
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store
	dataStore := store.NewPGStore(db)

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
			ConnectionName: "ff-dao-worker-governance",
			PublishTimeout: cfg.NATS.PublishTimeout,
		}, adapter.NewNatsJetStream(), jsonAdapter, jcsAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))
	}
	defer publisher.Close()

	recorder := journal.NewRecorder(jsonAdapter, jcsAdapter)
	machine := governance.NewStateMachine(dataStore, params, clock, jsonAdapter, publisher, recorder)

	// Initialize executor for activities
	executor := workflows.NewExecutor(machine, adapter.NewActivity())

	// Connect to Temporal
	temporalClient, err := temporal.Dial(cfg.Temporal.HostPort, cfg.Temporal.Namespace)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	// Create Temporal worker
	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.GovernanceTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
			Interceptors: []interceptor.WorkerInterceptor{
				temporal.NewSentryActivityInterceptor(),
			},
		})
	logger.InfoCtx(ctx, "Created Temporal worker", zap.String("taskQueue", cfg.Temporal.GovernanceTaskQueue))

	workerGovernance := workflows.NewWorkerGovernance(executor, workflows.DefaultWorkerGovernanceConfig())

	// Register workflows
	temporalWorker.RegisterWorkflowWithOptions(workerGovernance.ProposalLifecycle, workflow.RegisterOptions{
		Name: workflows.ProposalLifecycleWorkflow,
	})
	logger.InfoCtx(ctx, "Registered workflows")

	// Register activities
	temporalWorker.RegisterActivity(executor.GetProposalSchedule)
	temporalWorker.RegisterActivity(executor.StartVoting)
	temporalWorker.RegisterActivity(executor.EndVoting)
	temporalWorker.RegisterActivity(executor.QueueProposal)
	temporalWorker.RegisterActivity(executor.ExecuteProposal)
	logger.InfoCtx(ctx, "Registered activities")

	// Start worker
	if err := temporalWorker.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker started and listening for tasks")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))

	logger.InfoCtx(ctx, "Shutting down worker...")
	temporalWorker.Stop()
	logger.Info("Worker stopped")
}
