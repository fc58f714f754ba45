package adapter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNetworkFailure(t *testing.T) {
	assert.False(t, IsNetworkFailure(nil))
	assert.True(t, IsNetworkFailure(transportError("op", errors.New("dial tcp: refused"))))
	assert.True(t, IsNetworkFailure(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)))
	assert.True(t, IsNetworkFailure(context.Canceled))
	assert.True(t, IsNetworkFailure(fmt.Errorf("%w: busy", ErrServiceUnavailable)))
	assert.False(t, IsNetworkFailure(fmt.Errorf("%w: boom", ErrInternalServerError)))
	assert.False(t, IsNetworkFailure(ErrUnauthorized))
}

func TestIsRejection(t *testing.T) {
	assert.False(t, IsRejection(nil))
	assert.True(t, IsRejection(fmt.Errorf("%w: bad name", ErrBadRequest)))
	assert.True(t, IsRejection(ErrGone))
	assert.False(t, IsRejection(ErrUnauthorized))
	assert.False(t, IsRejection(fmt.Errorf("%w: token revoked", ErrForbidden)))
	assert.False(t, IsRejection(ErrTooManyRequests))
	assert.False(t, IsRejection(transportError("op", errors.New("reset"))))
}

func TestTransportError_KeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := transportError("create tag", cause)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "create tag")
}
