package api

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavecode/mavecode-api/internal/config"
)

func TestOpenStore(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("no url starts in maintenance", func(t *testing.T) {
		store, err := OpenStore(context.Background(), config.Storage{Driver: config.DriverPostgres}, logger)
		require.NoError(t, err)
		assert.Nil(t, store)
	})

	t.Run("unknown driver", func(t *testing.T) {
		store, err := OpenStore(context.Background(), config.Storage{Driver: "sqlite", MongoURL: "file:test.db"}, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown storage driver")
		assert.Nil(t, store)
	})
}
