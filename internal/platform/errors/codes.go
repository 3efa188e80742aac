// Package errors provides structured error handling with i18n support.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Remote API errors
	CodeTransport    Code = "TRANSPORT"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeDecode       Code = "DECODE"
	CodeRejected     Code = "REJECTED"
	CodeNotFound     Code = "NOT_FOUND"

	// Session errors
	CodeAuthFailed      Code = "AUTH_FAILED"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeSessionNotFound Code = "SESSION_NOT_FOUND"
)

// HTTPStatus maps domain codes to the status written back to the browser.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeTransport, CodeDecode:
		return http.StatusBadGateway
	case CodeUnauthorized, CodeAuthFailed, CodeSessionNotFound:
		return http.StatusUnauthorized
	case CodeRejected:
		return http.StatusUnprocessableEntity
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// LocalizationKey returns the catalog key used for the user-facing message.
func (c Code) LocalizationKey() string {
	switch c {
	case CodeTransport:
		return "error.transport"
	case CodeUnauthorized, CodeSessionNotFound:
		return "error.unauthorized"
	case CodeDecode:
		return "error.decode"
	case CodeRejected:
		return "error.rejected"
	case CodeNotFound:
		return "error.not_found"
	case CodeAuthFailed:
		return "error.auth_failed"
	case CodeInvalidInput:
		return "error.invalid_input"
	default:
		return "error.unknown"
	}
}
