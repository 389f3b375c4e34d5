package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkordes/paid-parking/backend/internal/domain"
	"github.com/pkordes/paid-parking/backend/internal/handler/gen"
)

const (
	codeNotFound           = "not_found"
	codeValidation         = "validation_error"
	codeConflict           = "conflict"
	codeInvalidRequestBody = "invalid_request_body"
	codeInvalidParameter   = "invalid_parameter"
	codeBodyTooLarge       = "request_too_large"
	codeInternal           = "internal_error"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the message because the handler is the layer that
// knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: codeNotFound, Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
func validationBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: codeValidation, Message: validationMessage(err)}}
}

func conflictBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: codeConflict, Message: message}}
}

// validationMessage extracts the human-readable part from a wrapped
// domain.ErrValidation, e.g.
// "service.RecorderService.Record: validation error: plate is required" → "plate is required".
func validationMessage(err error) string {
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// writeError is used by the router-level hooks that run outside the
// generated response objects (unknown routes, bad params, undecodable bodies).
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}})
}
