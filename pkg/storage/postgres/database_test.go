package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftxrest/pkg/storage/postgres"
)

// go test -v --run TestCreateDatabase
func TestCreateDatabase(t *testing.T) {
	adminDSN := os.Getenv("FTX_TEST_POSTGRES_ADMIN_DSN")
	if adminDSN == "" {
		t.Skip("FTX_TEST_POSTGRES_ADMIN_DSN not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, postgres.CreateDatabase(ctx, adminDSN, "ftx_archive_test"))
	// second call finds it
	require.NoError(t, postgres.CreateDatabase(ctx, adminDSN, "ftx_archive_test"))
}

func TestCreateDatabaseRejectsEmptyName(t *testing.T) {
	err := postgres.CreateDatabase(context.Background(), "host=localhost", "")
	assert.Error(t, err)
}
