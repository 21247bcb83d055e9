package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	moderncsqlite "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

// ErrorClassification is the result of [ErrorClassificator.Classify]. It
// tells a repository which constraint a failed statement violated.
type ErrorClassification int

const (
	// Unclassified covers every error that is not a known constraint
	// violation. Such errors are propagated as fatal.
	Unclassified ErrorClassification = iota

	// UniqueViolation means a UNIQUE constraint rejected the write
	// (duplicate username).
	UniqueViolation

	// ForeignKeyViolation means a REFERENCES constraint rejected the write
	// (task for an unknown user).
	ForeignKeyViolation
)

func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique violation"
	case ForeignKeyViolation:
		return "foreign key violation"
	default:
		return "unclassified"
	}
}

// SQLite3ErrorClassifier classifies errors of github.com/mattn/go-sqlite3.
type SQLite3ErrorClassifier struct{}

func NewSQLite3ErrorClassifier() *SQLite3ErrorClassifier {
	return &SQLite3ErrorClassifier{}
}

// Classify implements [ErrorClassificator] using the extended result code.
func (c *SQLite3ErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	}

	return Unclassified
}

// ModerncSQLiteErrorClassifier classifies errors of modernc.org/sqlite.
type ModerncSQLiteErrorClassifier struct{}

func NewModerncSQLiteErrorClassifier() *ModerncSQLiteErrorClassifier {
	return &ModerncSQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. modernc reports extended result
// codes by default.
func (c *ModerncSQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr *moderncsqlite.Error
	if !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch sqliteErr.Code() {
	case sqlitelib.SQLITE_CONSTRAINT_UNIQUE, sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY:
		return UniqueViolation
	case sqlitelib.SQLITE_CONSTRAINT_FOREIGNKEY:
		return ForeignKeyViolation
	}

	return Unclassified
}

// PostgresErrorClassifier classifies errors of the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It unwraps err as a
// *pgconn.PgError and delegates to [ClassifyPgError].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unclassified
}

// ClassifyPgError maps a PostgreSQL error code (class 23, integrity
// constraint violation) to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	}

	return Unclassified
}
