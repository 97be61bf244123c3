// Package pgtest provisions a PostgreSQL database with the ff-dao schema for integration tests.
// It uses TEST_DB_* environment variables when set (CI, local development) and
// otherwise starts a disposable testcontainers PostgreSQL instance.
package pgtest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every table of the schema in truncation order
var Tables = []string{
	"governance_journal",
	"asset_allocations",
	"allocation_strategies",
	"circuit_breakers",
	"treasury_metrics",
	"transaction_approvals",
	"treasury_transactions",
	"asset_balances",
	"assets",
	"guardians",
	"verification_requests",
	"members",
	"governance_tokens",
	"proposal_comments",
	"votes",
	"proposals",
}

// ErrProviderUnavailable is returned when no TEST_DB_HOST is set and Docker cannot be reached
var ErrProviderUnavailable = errors.New("container provider unavailable")

// Database is a provisioned test database
type Database struct {
	DB        *gorm.DB
	container *postgres.PostgresContainer
}

// Start provisions a database and applies db/init_pg_db.sql
func Start(ctx context.Context) (*Database, error) {
	dsn, container, err := dataSource(ctx)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		terminate(ctx, container)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := initializeSchema(db); err != nil {
		terminate(ctx, container)
		return nil, err
	}

	return &Database{DB: db, container: container}, nil
}

// Close terminates the container when one was started
func (d *Database) Close(ctx context.Context) {
	terminate(ctx, d.container)
}

// Truncate removes every row of every table and resets sequences
func (d *Database) Truncate() error {
	for _, table := range Tables {
		if err := d.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

var (
	sharedOnce sync.Once
	shared     *Database
	sharedErr  error
)

// Shared returns a database shared by every test of the package, started on first use.
// Tests are skipped in -short mode and when Docker is unavailable. The container is reaped by testcontainers when the test binary exits.
func Shared(t *testing.T) *Database {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping database integration test in short mode")
	}

	sharedOnce.Do(func() {
		shared, sharedErr = Start(context.Background())
	})
	if errors.Is(sharedErr, ErrProviderUnavailable) {
		t.Skipf("Skipping database integration test: %v", sharedErr)
	}
	if sharedErr != nil {
		t.Fatalf("failed to start test database: %v", sharedErr)
	}

	t.Cleanup(func() {
		if err := shared.Truncate(); err != nil {
			t.Errorf("failed to clean test database: %v", err)
		}
	})
	return shared
}

func dataSource(ctx context.Context) (string, *postgres.PostgresContainer, error) {
	// Check if we should use an external database (for CI or local development)
	if dbHost := os.Getenv("TEST_DB_HOST"); dbHost != "" {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost,
			envOr("TEST_DB_PORT", "5432"),
			envOr("TEST_DB_USER", "postgres"),
			envOr("TEST_DB_PASSWORD", "postgres"),
			envOr("TEST_DB_NAME", "test_db"))
		return dsn, nil, nil
	}

	if err := providerHealthy(ctx); err != nil {
		return "", nil, err
	}

	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", nil, fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate(ctx, container)
		return "", nil, fmt.Errorf("failed to get connection string: %w", err)
	}
	return dsn, container, nil
}

// providerHealthy reports ErrProviderUnavailable when the Docker provider is missing or unhealthy.
// testcontainers panics when it cannot resolve a Docker host.
func providerHealthy(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrProviderUnavailable, r)
		}
	}()

	provider, err := testcontainers.ProviderDocker.GetProvider()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer func() {
		_ = provider.Close()
	}()
	if err := provider.Health(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return nil
}

// initializeSchema runs the schema initialization and optional seed data
func initializeSchema(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	dbDir := filepath.Join(repoRoot(), "db")
	schemaSQL, err := os.ReadFile(filepath.Join(dbDir, "init_pg_db.sql")) //nolint:gosec,G304
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}
	if _, err := sqlDB.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	seedPath := filepath.Join(dbDir, "pg_test_data.sql")
	if _, err := os.Stat(seedPath); err == nil {
		seedSQL, err := os.ReadFile(seedPath) //nolint:gosec,G304
		if err != nil {
			return fmt.Errorf("failed to read seed file: %w", err)
		}
		if _, err := sqlDB.Exec(string(seedSQL)); err != nil {
			return fmt.Errorf("failed to execute seed data: %w", err)
		}
	}
	return nil
}

// repoRoot resolves the repository root from this source file so callers in any package find db/
func repoRoot() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func terminate(ctx context.Context, container *postgres.PostgresContainer) {
	if container == nil {
		return
	}
	if err := container.Terminate(ctx); err != nil {
		fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
	}
}
