package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known absent
// results. Callers should use [errors.Is] to match against these values.
// None of them is fatal: the shell reports them and carries on.
var (
	// ErrLoginAlreadyExists is returned when an account cannot be created
	// because a user with the same username already exists.
	ErrLoginAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup: an
	// unknown id, an unknown username or a username/password mismatch. It is
	// also returned when a task references a user that does not exist.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTaskNotFound is returned when a task id does not exist.
	ErrTaskNotFound = errors.New("task was not found")
)

// Low-level database operation errors. These wrap the driver error when a
// SQL-level operation fails; they are treated as fatal by the shell.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
