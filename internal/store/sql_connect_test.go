package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.AppDB{Driver: "mysql", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "tasks.db?_foreign_keys=on&_busy_timeout=5000", sqliteDSN(config.DriverSQLite3, "tasks.db"))
	assert.Equal(t, "tasks.db?mode=rwc&_foreign_keys=on&_busy_timeout=5000", sqliteDSN(config.DriverSQLite3, "tasks.db?mode=rwc"))
	assert.Equal(t, "tasks.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqliteDSN(config.DriverSQLite, "tasks.db"))
}

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.db")

	require.NoError(t, createLocalDBFileIfNotExists(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// existing file is left alone
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o600))
	require.NoError(t, createLocalDBFileIfNotExists(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))

	require.NoError(t, createLocalDBFileIfNotExists(sqliteMemoryDSN))
}

func TestNewConnectSQLite_ForeignKeysEnabled(t *testing.T) {
	for _, driver := range sqliteDrivers {
		t.Run(driver, func(t *testing.T) {
			db, err := NewConnectSQLite(context.Background(), config.AppDB{Driver: driver, DSN: sqliteMemoryDSN}, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = db.Close() })

			var enabled int
			require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
			assert.Equal(t, 1, enabled)
			assert.Equal(t, 1, db.Stats().MaxOpenConnections)
		})
	}
}

func TestStorages_StateSurvivesReopen(t *testing.T) {
	for _, driver := range sqliteDrivers {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			cfg := config.AppDB{Driver: driver, DSN: filepath.Join(t.TempDir(), "data", "tasks.db")}

			first, err := NewStorages(ctx, cfg, logger.Nop())
			require.NoError(t, err)

			user, err := first.UserRepository.CreateUser(ctx, models.User{Login: "alice", Password: "pw1"})
			require.NoError(t, err)
			taskID, err := first.TaskRepository.CreateTask(ctx, models.Task{
				UserID:           user.UserID,
				Title:            "Buy milk",
				Priority:         models.PriorityLow,
				CompletionStatus: models.StatusNotStarted,
				DueDate:          "2025-01-01",
			})
			require.NoError(t, err)
			require.NoError(t, first.Close())

			second, err := NewStorages(ctx, cfg, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = second.Close() })

			got, err := second.UserRepository.AuthenticateUser(ctx, "alice", "pw1")
			require.NoError(t, err)
			assert.Equal(t, user.UserID, got.UserID)

			task, err := second.TaskRepository.GetTask(ctx, taskID)
			require.NoError(t, err)
			assert.Equal(t, "Buy milk", task.Title)
		})
	}
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}
