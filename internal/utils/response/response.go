// Package response provides helpers for writing consistent JSON HTTP
// responses. Every handler sends JSON; centralising the header/status/
// encode sequence keeps the response shapes uniform for API consumers.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the standard envelope for validation and unexpected
// errors:
//
//	{ "status": "error", "error": "field name is required" }
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Detail is the envelope for not-found failures. The FastAPI-style
// body is part of the public API contract:
//
//	{ "detail": "Student not found" }
type Detail struct {
	Detail string `json:"detail"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes data as a JSON body with the given HTTP status
// code. Headers must be set before WriteHeader, which must run before
// any body bytes.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard error envelope.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// NotFound builds the fixed-detail body served with 404 responses.
func NotFound(message string) Detail {
	return Detail{Detail: message}
}

// ValidationError converts validator field errors into a single
// human-readable error envelope, one clause per failing field.
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "email":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a valid email address", e.Field()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
	}
}
