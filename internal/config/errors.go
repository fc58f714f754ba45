package config

import "errors"

// Validation errors returned when configuration groups are incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates a malformed API URL or a non-positive
	// request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty queue DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnknownQueueDriver indicates a queue driver other than "sqlite" or "bolt".
	ErrUnknownQueueDriver = errors.New("unknown queue driver")
	// ErrInvalidAppConfigs indicates invalid engine settings
	// (for example, a non-positive download window).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background loop settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidAuthConfigs indicates an email without a password or the
	// other way round.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
