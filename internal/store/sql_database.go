package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/migrations"
)

// DB is the single long-lived store connection. It carries the driver-specific
// query builder and error classifier used by the repositories.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		driver:  driver,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}

	switch driver {
	case config.DriverPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	case config.DriverSQLite:
		db.errorClassificator = NewModerncSQLiteErrorClassifier()
	default:
		db.errorClassificator = NewSQLite3ErrorClassifier()
	}

	return db
}

// Migrate creates the schema if it does not exist yet.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect())
}

func (db *DB) dialect() string {
	if db.driver == config.DriverPostgres {
		return migrations.DialectPostgres
	}
	return migrations.DialectSQLite
}
