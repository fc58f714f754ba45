package store

import "errors"

// Sentinel errors of the envelope codec. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrUnrecognizedEntityType is returned when an envelope carries a type
	// tag outside the closed set of entity kinds.
	ErrUnrecognizedEntityType = errors.New("unrecognized entity type")

	// ErrCorruptEnvelope is returned when an envelope or its payload cannot
	// be parsed.
	ErrCorruptEnvelope = errors.New("corrupt envelope")
)

// Queue backend errors.
var (
	// ErrUnknownQueueDriver is returned by [NewQueue] for a driver other than
	// "sqlite" or "bolt".
	ErrUnknownQueueDriver = errors.New("unknown queue driver")

	// ErrBuildingSQLQuery is returned when constructing an SQL statement fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails in the database.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan queue row")
)
