// Package apperrors defines the error classes the planner distinguishes and how they
// surface to HTTP clients.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error class.
type ErrorCode string

const (
	CodeInvalidInput        ErrorCode = "INVALID_INPUT"
	CodeUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeInternal            ErrorCode = "INTERNAL_ERROR"
)

// Sentinels for errors.Is. Wrap them with fmt.Errorf("%w: ...").
var (
	ErrInvalidInput        = &CodedError{Code: CodeInvalidInput, Message: "invalid input"}
	ErrUpstreamUnavailable = &CodedError{Code: CodeUpstreamUnavailable, Message: "upstream service unavailable"}
	ErrNotFound            = &CodedError{Code: CodeNotFound, Message: "not found"}
	ErrInternal            = &CodedError{Code: CodeInternal, Message: "internal server error"}
)

// CodedError is a classified error with a message that is safe to show to clients.
type CodedError struct {
	Code    ErrorCode
	Message string
}

func (e *CodedError) Error() string {
	return string(e.Code)
}

// Is matches any CodedError with the same code.
func (e *CodedError) Is(target error) bool {
	t, ok := target.(*CodedError)
	return ok && t.Code == e.Code
}

// MissingField reports a required request field that was absent or blank.
func MissingField(field string) error {
	return &publicError{
		cause:   ErrInvalidInput,
		message: fmt.Sprintf("missing required field: %s", field),
	}
}

// Invalid reports a client error whose message is shown verbatim.
func Invalid(format string, args ...interface{}) error {
	return &publicError{
		cause:   ErrInvalidInput,
		message: fmt.Sprintf(format, args...),
	}
}

// NotFound reports an unresolvable lookup; the message is shown verbatim.
func NotFound(format string, args ...interface{}) error {
	return &publicError{
		cause:   ErrNotFound,
		message: fmt.Sprintf(format, args...),
	}
}

// Upstream classifies a collaborator failure. The cause is kept for logs only.
func Upstream(provider string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUpstreamUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, provider, err)
}

// publicError carries a client-facing message alongside its class.
type publicError struct {
	cause   *CodedError
	message string
}

func (e *publicError) Error() string {
	return fmt.Sprintf("%s: %s", e.cause.Code, e.message)
}

func (e *publicError) Unwrap() error {
	return e.cause
}

// HTTPStatus maps err to a status code and a message that does not leak collaborator
// internals.
func HTTPStatus(err error) (int, string) {
	var pub *publicError
	if errors.As(err, &pub) {
		return statusFor(pub.cause.Code), pub.message
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return statusFor(coded.Code), coded.Message
	}
	return statusFor(CodeInternal), ErrInternal.Message
}

func statusFor(code ErrorCode) int {
	switch code {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUpstreamUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
