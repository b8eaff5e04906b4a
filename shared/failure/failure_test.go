package failure_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"arena/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	assert.Equal(t, "test error message", f.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{name: "bad request", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest, kind: failure.KindBadRequest},
		{name: "unauthorized", err: failure.Unauthorized("who"), code: http.StatusUnauthorized, kind: failure.KindUnauthorized},
		{name: "forbidden", err: failure.Forbidden("no"), code: http.StatusForbidden, kind: failure.KindForbidden},
		{name: "not found", err: failure.NotFound("facility not found"), code: http.StatusNotFound, kind: failure.KindNotFound},
		{name: "conflict", err: failure.Conflict("taken"), code: http.StatusConflict, kind: failure.KindConflict},
		{name: "explicit", err: failure.New(http.StatusConflict, "overlap", "slot taken"), code: http.StatusConflict, kind: "overlap"},
		{name: "internal", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError, kind: failure.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.kind, failure.GetKind(tt.err))
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
	assert.NoError(t, failure.Transient(nil))
}

func TestGetCode_WrappedAndPlain(t *testing.T) {
	wrapped := fmt.Errorf("failed to get facility: %w", failure.NotFound("facility not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(wrapped))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.Equal(t, failure.KindInternal, failure.GetKind(errors.New("plain")))
}

func TestTransient(t *testing.T) {
	err := fmt.Errorf("failed to list reservations: %w", failure.Transient(context.DeadlineExceeded))

	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	assert.True(t, failure.IsKind(err, failure.KindTransient))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "try again")
}

func TestIsKind(t *testing.T) {
	assert.False(t, failure.IsKind(nil, failure.KindNotFound))
	assert.True(t, failure.IsKind(failure.NotFound("x"), failure.KindNotFound))
	assert.False(t, failure.IsKind(failure.NotFound("x"), failure.KindConflict))
}
