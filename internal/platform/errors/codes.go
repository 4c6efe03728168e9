// Package errors provides structured error handling with i18n support.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Icon registry errors
	CodeIconUnknown           Code = "ICON_UNKNOWN"
	CodeIconMissingLabel      Code = "ICON_MISSING_LABEL"
	CodeIconInvalidDefinition Code = "ICON_INVALID_DEFINITION"
	CodeIconDuplicateID       Code = "ICON_DUPLICATE_ID"

	// Binding errors
	CodeBindingSlotEmpty   Code = "BINDING_SLOT_EMPTY"
	CodeBindingSlotInvalid Code = "BINDING_SLOT_INVALID"

	// Request errors
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodePayloadTooLarge Code = "PAYLOAD_TOO_LARGE"

	// Storage errors
	CodeNotFound    Code = "NOT_FOUND"
	CodeUnavailable Code = "UNAVAILABLE"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad request - validation failures, bad input
	case CodeIconMissingLabel,
		CodeIconInvalidDefinition,
		CodeBindingSlotEmpty,
		CodeBindingSlotInvalid,
		CodeInvalidArgument:
		return http.StatusBadRequest

	// NotFound - identifier is not registered or not stored
	case CodeIconUnknown,
		CodeNotFound:
		return http.StatusNotFound

	// RequestEntityTooLarge - body over the accepted limit
	case CodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge

	// Conflict - unique identifier constraint
	case CodeIconDuplicateID:
		return http.StatusConflict

	// ServiceUnavailable - a backing store is not configured or not answering
	case CodeUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
