package domainerrors

import "errors"

// Code represents a domain error category independent of transport layer.
// These codes describe what went wrong in business logic terms, not HTTP terms.
type Code string

const (
	// Issuance failure codes, in pipeline order.
	CodeUnknownIssuer          Code = "unknown_issuer"
	CodeUnknownCustomer        Code = "unknown_customer"
	CodeComplianceCheckFailed  Code = "compliance_check_failed"
	CodeLevelMismatch          Code = "level_mismatch"
	CodeAccreditationMismatch  Code = "accreditation_mismatch"
	CodeUnsupportedAlgorithm   Code = "unsupported_algorithm"

	// Verification check codes.
	CodeExpired             Code = "expired"
	CodeRevoked             Code = "revoked"
	CodeInvalidSignature    Code = "invalid_signature"
	CodeMalformedCredential Code = "malformed_credential"

	// Ambient codes shared by stores and transport.
	CodeNotFound     Code = "not_found"
	CodeBadRequest   Code = "bad_request"
	CodeValidation   Code = "validation_failed"
	CodeConflict     Code = "conflict"
	CodeUnauthorized Code = "unauthorized"
	CodeInternal     Code = "internal_error"
)

// Error wraps domain or infrastructure failures with a stable code.
// It is transport-agnostic and can be used across service, store, and other layers.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap creates a new domain error wrapping an existing error.
// If the wrapped error is already a domain error, the original code is preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// WrapWithCode wraps an error under the given code even when the wrapped
// error already carries a domain code. Resolution boundaries use it to
// translate a dependency's vocabulary (a store's not_found) into their own;
// the original error stays on the chain for errors.Is/As.
func WrapWithCode(err error, code Code, msg string) error {
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error is a domain error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf extracts the domain code from an error, or CodeInternal when the
// error carries no code. Used by batch reporting and transport mapping.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
