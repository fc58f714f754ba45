package adapter

import (
	"context"
	"errors"
	"net"
)

var (
	// ErrNetwork wraps transport failures: unreachable host, timeouts, cancellation.
	ErrNetwork = errors.New("network failure")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRequestTimeout      = errors.New("request timeout")
	ErrConflict            = errors.New("conflict")
	ErrGone                = errors.New("gone")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")

	// ErrUnsupportedKind is returned for an operation the API does not offer
	// for a kind, such as creating a user through Create.
	ErrUnsupportedKind = errors.New("unsupported kind")

	// ErrMissingRemoteID is returned when Update, Delete or Get is asked for
	// an object the server has never acknowledged.
	ErrMissingRemoteID = errors.New("missing remote id")
)

// IsNetworkFailure reports whether err is transient: the request may succeed
// later without any change on the client.
func IsNetworkFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNetwork) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, ErrRequestTimeout) ||
		errors.Is(err, ErrTooManyRequests) ||
		errors.Is(err, ErrBadGateway) ||
		errors.Is(err, ErrServiceUnavailable) ||
		errors.Is(err, ErrGatewayTimeout)
}

// IsRejection reports whether the server permanently refused the payload.
// Resending the same payload will fail the same way. 401 and 403 answer for
// the credentials, not the payload, and are not rejections.
func IsRejection(err error) bool {
	return errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrGone) ||
		errors.Is(err, ErrUnprocessableEntity)
}
