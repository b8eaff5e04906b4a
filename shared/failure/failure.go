package failure

import (
	"errors"
	"net/http"
)

// Kinds shared by every domain. Booking rule kinds live with the reservation domain.
const (
	KindBadRequest   = "bad_request"
	KindUnauthorized = "unauthorized"
	KindForbidden    = "forbidden"
	KindNotFound     = "not_found"
	KindConflict     = "conflict"
	KindTransient    = "transient"
	KindInternal     = "internal"
)

const transientMessage = "storage is temporarily unavailable, please try again"

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Kind is the machine-readable reason callers branch on.
type Failure struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have the required permissions"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// New returns a Failure with an explicit code and kind.
func New(code int, kind, message string) error {
	return &Failure{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(message string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: message,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
	}
}

// Transient marks a storage collaborator that was unreachable or timed out.
// Callers may retry; the service never does.
func Transient(err error) error {
	if err == nil {
		return nil
	}

	return &transientFailure{
		Failure: Failure{
			Code:    http.StatusServiceUnavailable,
			Kind:    KindTransient,
			Message: transientMessage,
		},
		cause: err,
	}
}

type transientFailure struct {
	Failure
	cause error
}

func (t *transientFailure) Unwrap() error {
	return t.cause
}

// As lets errors.As find the embedded Failure.
func (t *transientFailure) As(target any) bool {
	if f, ok := target.(**Failure); ok {
		*f = &t.Failure

		return true
	}

	return false
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the machine-readable kind of an error interface.
func GetKind(err error) string {
	var fail *Failure
	if errors.As(err, &fail) && fail.Kind != "" {
		return fail.Kind
	}

	return KindInternal
}

func IsKind(err error, kind string) bool {
	return err != nil && GetKind(err) == kind
}
