package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

const (
	sqliteMemoryDSN    = ":memory:"
	sqliteBusyTimeout  = 5 * time.Second
	postgresMaxConns   = 4
	postgresMaxIdle    = 2
	postgresConnMaxAge = 30 * time.Minute
)

// NewConnect opens the store connection for the configured driver.
func NewConnect(ctx context.Context, cfg config.AppDB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite3, config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		log.Error().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("unsupported database driver")
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// NewConnectSQLite opens a SQLite database file, creating it and its
// directory if missing. cfg.Driver selects mattn/go-sqlite3 ("sqlite3") or
// modernc.org/sqlite ("sqlite").
func NewConnectSQLite(ctx context.Context, cfg config.AppDB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open(cfg.Driver, sqliteDSN(cfg.Driver, cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// one session, one writer
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().
		Str("func", "NewConnectSQLite").
		Str("driver", cfg.Driver).
		Str("dsn", cfg.DSN).
		Msg("connected to database successfully")

	return newDB(conn, cfg.Driver, log), nil
}

// NewConnectPostgres opens a PostgreSQL connection through pgx.
func NewConnectPostgres(ctx context.Context, cfg config.AppDB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open(config.DriverPostgres, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(postgresMaxConns)
	conn.SetMaxIdleConns(postgresMaxIdle)
	conn.SetConnMaxLifetime(postgresConnMaxAge)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newDB(conn, config.DriverPostgres, log), nil
}

// sqliteDSN appends the connection pragmas in the query syntax of each driver.
// Both drivers strip the query part from a plain file path.
func sqliteDSN(driver, path string) string {
	timeout := sqliteBusyTimeout.Milliseconds()

	var params string
	if driver == config.DriverSQLite {
		params = fmt.Sprintf("_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)", timeout)
	} else {
		params = fmt.Sprintf("_foreign_keys=on&_busy_timeout=%d", timeout)
	}

	if strings.Contains(path, "?") {
		return path + "&" + params
	}
	return path + "?" + params
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == "" || dbFile == sqliteMemoryDSN || strings.HasPrefix(dbFile, "file:") {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(dbFile), 0o700); err != nil {
			return fmt.Errorf("error creating DB directory: %w", err)
		}

		// if not found - create
		f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		_ = f.Close()
	}

	// file already exists
	return nil
}
