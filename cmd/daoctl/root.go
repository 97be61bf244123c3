package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/api/shared/executor"
	"github.com/feral-file/ff-dao/internal/config"
	"github.com/feral-file/ff-dao/internal/governance"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/messaging"
	"github.com/feral-file/ff-dao/internal/providers/jetstream"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/treasury"
)

// DEFAULT_ACTOR is the journal identity of changes made from the command line
const DEFAULT_ACTOR = "daoctl"

var (
	configFile string
	envPath    string
	actor      string

	// built once per invocation by the root pre-run hook
	cliConfig *config.CLIConfig
	services  executor.Services
	publisher messaging.Publisher
)

var rootCmd = &cobra.Command{
	Use:   "daoctl",
	Short: "Administrative command line for the Feral File DAO",
	Long: `daoctl performs administrative actions directly against the DAO database:
governance token top-ups, the guardian registry, the circuit breaker,
the asset registry and treasury inspection.

Every change is journaled under the --actor identity.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if publisher != nil {
			publisher.Close()
		}
		logger.Flush(2 * time.Second)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", "config/", "Path to environment files")
	rootCmd.PersistentFlags().StringVar(&actor, "actor", DEFAULT_ACTOR, "Identity recorded in the governance journal")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "governance",
		Title: "Governance Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "treasury",
		Title: "Treasury Commands",
	})

	tokensCmd.GroupID = "governance"
	proposalsCmd.GroupID = "governance"
	guardiansCmd.GroupID = "treasury"
	breakerCmd.GroupID = "treasury"
	assetsCmd.GroupID = "treasury"
	balancesCmd.GroupID = "treasury"

	rootCmd.AddCommand(tokensCmd, proposalsCmd, guardiansCmd, breakerCmd, assetsCmd, balancesCmd)
}

// setup loads the configuration and connects the domain services
func setup(cmd *cobra.Command, args []string) error {
	config.ChdirRepoRoot()
	cfg, err := config.LoadCLIConfig(configFile, envPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cliConfig = cfg

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "daoctl",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	governanceParams := governance.ParamsFromConfig(cfg.Governance)
	if err := governanceParams.Validate(); err != nil {
		return err
	}
	treasuryParams := treasury.ParamsFromConfig(cfg.Treasury)
	if err := treasuryParams.Validate(); err != nil {
		return err
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := store.ConfigureConnectionPool(db, 2, 1, 0, 0); err != nil {
		return err
	}

	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()

	publisher = messaging.NewNopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(cmd.Context(), jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: "ff-dao-daoctl",
			PublishTimeout: cfg.NATS.PublishTimeout,
		}, adapter.NewNatsJetStream(), jsonAdapter, jcsAdapter)
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
	}

	services = executor.NewServices(executor.ServicesConfig{
		Store:      store.NewPGStore(db),
		Publisher:  publisher,
		Clock:      adapter.NewClock(),
		JSON:       jsonAdapter,
		JCS:        jcsAdapter,
		Governance: governanceParams,
		Treasury:   treasuryParams,
	})
	return nil
}
