// Package shared holds the transport-level error envelope. It translates
// transport-agnostic domain errors into HTTP status codes so handlers never
// map errors themselves.
package shared

import (
	"errors"
	"net/http"

	"attesta/internal/transport/http/json"
	dErrors "attesta/pkg/domain-errors"
)

// WriteError centralizes domain error translation to HTTP responses.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		response := map[string]string{
			"error": string(domainErr.Code),
		}
		if domainErr.Message != "" {
			response["error_description"] = domainErr.Message
		}
		json.WriteJSON(w, DomainCodeToHTTPStatus(domainErr.Code), response)
		return
	}

	json.WriteJSON(w, http.StatusInternalServerError, map[string]string{
		"error": string(dErrors.CodeInternal),
	})
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound, dErrors.CodeUnknownIssuer, dErrors.CodeUnknownCustomer:
		return http.StatusNotFound
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeMalformedCredential:
		return http.StatusBadRequest
	case dErrors.CodeComplianceCheckFailed, dErrors.CodeLevelMismatch, dErrors.CodeAccreditationMismatch:
		return http.StatusUnprocessableEntity
	case dErrors.CodeUnsupportedAlgorithm:
		return http.StatusUnprocessableEntity
	case dErrors.CodeExpired, dErrors.CodeRevoked, dErrors.CodeInvalidSignature:
		return http.StatusConflict
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
