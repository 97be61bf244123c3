package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-dao/internal/domain"
)

// ENV_PREFIX is the prefix of every environment variable read by the services
const ENV_PREFIX = "FF_DAO"

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadHost        string        `mapstructure:"read_host"`
	ReadPort        int           `mapstructure:"read_port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
// An empty URL disables event publishing
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	PublishTimeout time.Duration `mapstructure:"publish_timeout"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	GovernanceTaskQueue                string  `mapstructure:"governance_task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
	MaxConcurrentActivityTaskPollers   int     `mapstructure:"max_concurrent_activity_task_pollers"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// CORSAllowedOrigins restricts cross-origin callers, empty allows every origin
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// RedisConfig holds Redis configuration
// An empty Addr disables the features backed by Redis
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig holds the per-subject request rate limit
type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
	Burst             int `mapstructure:"burst"`
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// GovernanceConfig holds the proposal lifecycle and voting parameters
type GovernanceConfig struct {
	DiscussionPeriod           time.Duration `mapstructure:"discussion_period"`
	VotingPeriod               time.Duration `mapstructure:"voting_period"`
	Timelock                   time.Duration `mapstructure:"timelock"`
	QuorumPercentage           int64         `mapstructure:"quorum_percentage"`
	ApprovalThreshold          int64         `mapstructure:"approval_threshold"`
	MaxVotingPowerPercentage   int64         `mapstructure:"max_voting_power_percentage"`
	LockPeriod                 time.Duration `mapstructure:"lock_period"`
	ProposerMinSharePercentage int64         `mapstructure:"proposer_min_share_percentage"`
}

// TreasuryConfig holds the multisig and reserve parameters
type TreasuryConfig struct {
	MultisigThreshold  int     `mapstructure:"multisig_threshold"`
	RejectionThreshold int     `mapstructure:"rejection_threshold"`
	GuardianCount      int     `mapstructure:"guardian_count"`
	ReserveRatio       float64 `mapstructure:"reserve_ratio"`
}

// SweeperJobsConfig holds the cron schedules of the maintenance jobs.
// An empty schedule disables the job.
type SweeperJobsConfig struct {
	ProposalDeadlines  string        `mapstructure:"proposal_deadlines"`
	TreasurySettlement string        `mapstructure:"treasury_settlement"`
	TokenLocks         string        `mapstructure:"token_locks"`
	TreasuryMetrics    string        `mapstructure:"treasury_metrics"`
	BatchSize          int           `mapstructure:"batch_size"`
	JobTimeout         time.Duration `mapstructure:"job_timeout"`
	Worker             WorkerConfig  `mapstructure:"worker"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Temporal   TemporalConfig   `mapstructure:"temporal"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Redis      RedisConfig      `mapstructure:"redis"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Governance GovernanceConfig `mapstructure:"governance"`
	Treasury   TreasuryConfig   `mapstructure:"treasury"`
	// LifecycleWorkflowEnabled starts the proposal lifecycle workflow when discussion starts
	LifecycleWorkflowEnabled bool `mapstructure:"lifecycle_workflow_enabled"`
}

// WorkerGovernanceConfig holds configuration for worker-governance
type WorkerGovernanceConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Temporal   TemporalConfig   `mapstructure:"temporal"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Governance GovernanceConfig `mapstructure:"governance"`
	Treasury   TreasuryConfig   `mapstructure:"treasury"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig    `mapstructure:"database"`
	NATS       NATSConfig        `mapstructure:"nats"`
	Governance GovernanceConfig  `mapstructure:"governance"`
	Treasury   TreasuryConfig    `mapstructure:"treasury"`
	Jobs       SweeperJobsConfig `mapstructure:"jobs"`
}

// CLIConfig holds configuration for daoctl
type CLIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig   `mapstructure:"database"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Temporal   TemporalConfig   `mapstructure:"temporal"`
	Governance GovernanceConfig `mapstructure:"governance"`
	Treasury   TreasuryConfig   `mapstructure:"treasury"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("rate_limit.requests_per_minute", 120)
	v.SetDefault("rate_limit.burst", 30)
	v.SetDefault("lifecycle_workflow_enabled", false)
	setCommonDefaults(v)
	setTemporalDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadWorkerGovernanceConfig loads configuration for worker-governance
func LoadWorkerGovernanceConfig(configFile string, envPath string) (*WorkerGovernanceConfig, error) {
	v := configureViper("worker-governance", configFile, envPath)

	// Set defaults
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 20)
	v.SetDefault("temporal.worker_activities_per_second", 20)
	v.SetDefault("temporal.max_concurrent_activity_task_pollers", 4)
	setCommonDefaults(v)
	setTemporalDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config WorkerGovernanceConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("jobs.proposal_deadlines", "@every 1m")
	v.SetDefault("jobs.treasury_settlement", "@every 1m")
	v.SetDefault("jobs.token_locks", "@every 10m")
	v.SetDefault("jobs.treasury_metrics", "@hourly")
	v.SetDefault("jobs.batch_size", 100)
	v.SetDefault("jobs.job_timeout", "5m")
	v.SetDefault("jobs.worker.pool_size", 4)
	v.SetDefault("jobs.worker.queue_size", 16)
	setCommonDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}
	if cfg.Jobs.BatchSize <= 0 {
		return nil, errors.New("jobs.batch_size must be positive")
	}

	return &cfg, nil
}

// LoadCLIConfig loads configuration for daoctl
func LoadCLIConfig(configFile string, envPath string) (*CLIConfig, error) {
	v := configureViper("daoctl", configFile, envPath)
	setCommonDefaults(v)
	setTemporalDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config CLIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// setCommonDefaults sets defaults shared by every service
func setCommonDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.stream_name", "DAO_EVENTS")
	v.SetDefault("nats.subject_prefix", "dao.events")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.publish_timeout", "5s")

	v.SetDefault("governance.discussion_period", domain.DEFAULT_DISCUSSION_PERIOD)
	v.SetDefault("governance.voting_period", domain.DEFAULT_VOTING_PERIOD)
	v.SetDefault("governance.timelock", domain.DEFAULT_TIMELOCK)
	v.SetDefault("governance.quorum_percentage", domain.DEFAULT_QUORUM_PERCENTAGE)
	v.SetDefault("governance.approval_threshold", domain.DEFAULT_APPROVAL_THRESHOLD)
	v.SetDefault("governance.max_voting_power_percentage", domain.DEFAULT_MAX_VOTING_POWER_PERCENTAGE)
	v.SetDefault("governance.lock_period", domain.DEFAULT_TOKEN_LOCK_PERIOD)
	v.SetDefault("governance.proposer_min_share_percentage", domain.DEFAULT_PROPOSER_MIN_SHARE)

	v.SetDefault("treasury.multisig_threshold", domain.DEFAULT_MULTISIG_THRESHOLD)
	v.SetDefault("treasury.rejection_threshold", domain.DEFAULT_REJECTION_THRESHOLD)
	v.SetDefault("treasury.guardian_count", domain.DEFAULT_GUARDIAN_COUNT)
	v.SetDefault("treasury.reserve_ratio", domain.DEFAULT_RESERVE_RATIO)
}

func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.governance_task_queue", "dao-governance")
}

// readConfig reads the config file, tolerating its absence for env-only deployments
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/sweeper/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.read_host",
		"database.read_port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.publish_timeout",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.governance_task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		"temporal.max_concurrent_activity_task_pollers",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Redis and rate limit
		"redis.addr",
		"redis.password",
		"redis.db",
		"rate_limit.requests_per_minute",
		"rate_limit.burst",
		"lifecycle_workflow_enabled",
		// Governance
		"governance.discussion_period",
		"governance.voting_period",
		"governance.timelock",
		"governance.quorum_percentage",
		"governance.approval_threshold",
		"governance.max_voting_power_percentage",
		"governance.lock_period",
		"governance.proposer_min_share_percentage",
		// Treasury
		"treasury.multisig_threshold",
		"treasury.rejection_threshold",
		"treasury.guardian_count",
		"treasury.reserve_ratio",
		// Sweeper jobs
		"jobs.proposal_deadlines",
		"jobs.treasury_settlement",
		"jobs.token_locks",
		"jobs.treasury_metrics",
		"jobs.batch_size",
		"jobs.job_timeout",
		"jobs.worker.pool_size",
		"jobs.worker.queue_size",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ReadDSN returns the read-replica database connection string.
// If ReadPort is not configured, it falls back to Port.
func (c *DatabaseConfig) ReadDSN() string {
	port := c.ReadPort
	if port == 0 {
		port = c.Port
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.ReadHost, port, c.User, c.Password, c.DBName, c.SSLMode)
}
