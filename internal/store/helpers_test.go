package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
)

// sqliteDrivers are exercised by every property test.
var sqliteDrivers = []string{config.DriverSQLite3, config.DriverSQLite}

func ptr[T any](v T) *T { return &v }

// newMockDB wraps a sqlmock connection as a *DB speaking the given driver's
// placeholder style and error codes.
func newMockDB(t *testing.T, driver string) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, driver, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T, driver string) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t, driver)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func newTestTaskRepo(t *testing.T, driver string) (*taskRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t, driver)
	return &taskRepository{db: db, validator: validators.NewTaskValidator(), logger: logger.Nop()}, mock
}

// newMemoryStorages opens a migrated in-memory SQLite store.
func newMemoryStorages(t *testing.T, driver string) *Storages {
	t.Helper()
	s, err := NewStorages(context.Background(), config.AppDB{Driver: driver, DSN: sqliteMemoryDSN}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func countRows(t *testing.T, s *Storages, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.QueryRowContext(context.Background(), query, args...).Scan(&n))
	return n
}

