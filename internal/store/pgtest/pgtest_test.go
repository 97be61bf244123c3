package pgtest

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartWithoutDocker(t *testing.T) {
	if _, err := os.Stat("/var/run/docker.sock"); err == nil {
		t.Skip("Docker socket present")
	}
	t.Setenv("TEST_DB_HOST", "")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	t.Setenv("DOCKER_HOST", "unix:///nonexistent/docker.sock")

	ctx := context.Background()
	db, err := Start(ctx)
	if err == nil {
		db.Close(ctx)
		t.Skip("Docker is reachable")
	}

	require.ErrorIs(t, err, ErrProviderUnavailable)
	assert.Nil(t, db)
}
