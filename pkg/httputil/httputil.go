// Package httputil provides JSON request/response helpers for the HTTP API.
//
// All API responses are JSON. Errors are rendered as a small envelope
// carrying the machine-readable code from [errors.GetCode] alongside a
// human-readable message:
//
//	{"error": {"code": "INVALID_LANGUAGE", "message": "invalid language: \"cobol\""}}
//
// Error codes map onto HTTP statuses via [StatusFor], so handlers can
// return domain errors directly:
//
//	if err := opts.Validate(); err != nil {
//	    httputil.WriteError(w, err)
//	    return
//	}
package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pipesmith/pipesmith/pkg/errors"
)

// maxBodyBytes caps request bodies. Project descriptions are short; a
// megabyte is far beyond anything legitimate.
const maxBodyBytes = 1 << 20

// errorEnvelope is the wire shape of an API error.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// WriteError writes err as a JSON error envelope, choosing the HTTP
// status from its error code.
func WriteError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	WriteJSON(w, StatusFor(code), errorEnvelope{
		Error: errorBody{Code: string(code), Message: err.Error()},
	})
}

// WriteErrorStatus writes err with an explicit status, bypassing the
// code-to-status mapping.
func WriteErrorStatus(w http.ResponseWriter, status int, code errors.Code, format string, args ...any) {
	WriteJSON(w, status, errorEnvelope{
		Error: errorBody{Code: string(code), Message: fmt.Sprintf(format, args...)},
	})
}

// StatusFor maps an error code to an HTTP status.
func StatusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidLanguage,
		errors.ErrCodeInvalidPlatform,
		errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeResultNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON decodes a request body into v, rejecting unknown fields
// and oversized bodies.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding request body")
	}
	return nil
}
