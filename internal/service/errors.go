package service

import "errors"

var (
	// ErrUnrecognizedEntity is returned by [Link] for an entity type outside
	// the closed set of kinds.
	ErrUnrecognizedEntity = errors.New("unrecognized entity")

	// ErrNotAuthenticated is reported when a request needs an API token and
	// the state has none.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrRejectedReference is the quarantine cause of an entity whose
	// reference the server refused earlier.
	ErrRejectedReference = errors.New("reference rejected by server")

	// ErrUnknownRequest is logged for a server request outside the closed set.
	ErrUnknownRequest = errors.New("unknown server request")
)
