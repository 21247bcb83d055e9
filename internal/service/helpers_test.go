package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

func ptr[T any](v T) *T { return &v }

func newMemoryStorages(t *testing.T) *store.Storages {
	t.Helper()
	s, err := store.NewStorages(context.Background(), config.AppDB{Driver: config.DriverSQLite3, DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}
