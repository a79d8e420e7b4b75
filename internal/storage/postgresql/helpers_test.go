package postgresql

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mavecode/mavecode-api/internal/migrations"
	"github.com/mavecode/mavecode-api/internal/models"
)

func setupTestDatabase(t *testing.T) (*Storage, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("requires docker")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := New(ctx, dsn)
	require.NoError(t, err)

	root, err := filepath.Abs("../../..")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(s.DB, filepath.Join(root, "migrations")))

	cleanup := func() {
		_ = s.Close(ctx)
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	return s, cleanup
}

// Postgres keeps microseconds; timestamps are truncated the same way the
// services do before writing.
func testNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func newCourse(title, category string, free bool, at time.Time) models.Course {
	return models.Course{
		ID:          uuid.NewString(),
		Title:       title,
		Description: title + " description",
		IsFree:      free,
		Category:    category,
		Level:       models.DefaultLevel,
		Instructor:  models.DefaultInstructor,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
}
