package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestSQLite3ErrorClassifier(t *testing.T) {
	c := NewSQLite3ErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, want: UniqueViolation},
		{name: "primary key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, want: UniqueViolation},
		{name: "foreign key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, want: ForeignKeyViolation},
		{name: "not null", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, want: Unclassified},
		{
			name: "wrapped unique",
			err:  fmt.Errorf("insert: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}),
			want: UniqueViolation,
		},
		{name: "pg error is not sqlite", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: UniqueViolation},
		{name: "foreign key", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: ForeignKeyViolation},
		{name: "check", err: &pgconn.PgError{Code: pgerrcode.CheckViolation}, want: Unclassified},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Unclassified},
		{name: "wrapped", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation}), want: UniqueViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestModerncSQLiteErrorClassifier_NonDriverErrors(t *testing.T) {
	c := NewModerncSQLiteErrorClassifier()

	assert.Equal(t, Unclassified, c.Classify(nil))
	assert.Equal(t, Unclassified, c.Classify(errors.New("boom")))
	assert.Equal(t, Unclassified, c.Classify(sqlite3.Error{ExtendedCode: sqlite3.ErrConstraintUnique}))
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "unique violation", UniqueViolation.String())
	assert.Equal(t, "foreign key violation", ForeignKeyViolation.String())
	assert.Equal(t, "unclassified", Unclassified.String())
}
