package services

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/inventory-service/pkg/app"
	"github.com/ghuser/inventory-service/pkg/config"
	"github.com/ghuser/inventory-service/pkg/logger"
)

func newApp(driver string) *app.Application {
	cfg := &config.Config{Environment: config.EnvTesting, StorageDriver: driver}
	return app.New(cfg, nil, logger.NewWithWriter(io.Discard, "error"))
}

func TestNew_MemoryDriver(t *testing.T) {
	svcs, err := New(newApp(config.StorageMemory))
	require.NoError(t, err)
	require.NotNil(t, svcs.Item)
}

func TestNew_PostgresWithoutPool(t *testing.T) {
	svcs, err := New(newApp(config.StoragePostgres))
	assert.ErrorIs(t, err, ErrNoDatabase)
	assert.Nil(t, svcs)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(newApp("sqlite"))
	assert.ErrorContains(t, err, `unknown storage driver "sqlite"`)
}
