package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("disk on fire")
	err := Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "Internal server error: disk on fire", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrorResponse{Error: MsgInternal}, err.Response())

	assert.Equal(t, MsgNotFound, NotFound().Error())
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", BadRequest(MsgInvalidJSON, nil))
	appErr := AsAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, MsgInvalidJSON, appErr.Message)

	plain := errors.New("boom")
	appErr = AsAppError(plain)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, MsgInternal, appErr.Message)
	assert.ErrorIs(t, appErr, plain)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		status int
		msg    string
	}{
		{"not found", NotFound(), http.StatusNotFound, MsgNotFound},
		{"too large", TooLarge(nil), http.StatusRequestEntityTooLarge, MsgBodyTooLarge},
		{"rate limited", TooManyRequests(), http.StatusTooManyRequests, MsgTooManyRequests},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.msg, tt.err.Message)
		})
	}
}
