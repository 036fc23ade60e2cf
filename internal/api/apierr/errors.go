// Package apierr converts domain errors into HTTP error responses.
// Error bodies are a bare {"message": "..."} object; store and driver
// errors collapse to a generic 500 so no internal detail leaks out.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arcadelab/wavearena-go/internal/model"
	"github.com/arcadelab/wavearena-go/internal/services/auth"
	"github.com/arcadelab/wavearena-go/internal/services/progress"
)

// ErrorResponse is the JSON body for all error responses
type ErrorResponse struct {
	Message string `json:"message"`
}

// httpError combines an HTTP status code with a client-facing message
type httpError struct {
	status  int
	message string
}

// Error implements the error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Message: he.message})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, auth.ErrWeakPassword):
		return &httpError{http.StatusBadRequest,
			"Password must be at least 10 chars and include upper, lower, number, and symbol"}
	case errors.Is(err, model.ErrUsernameTaken):
		return &httpError{http.StatusConflict, "Username already taken"}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, "Invalid username or password"}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, "Not authenticated"}
	case errors.Is(err, progress.ErrInvalidSubmission):
		return &httpError{http.StatusBadRequest, "Wave must be at least 1 and score must be non-negative"}
	default:
		return &httpError{http.StatusInternalServerError, "Internal server error"}
	}
}

// NewInvalidRequestError creates a 400 error with the given message
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewUnauthorizedError creates the 401 returned by the auth gate
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, "Not authenticated"}
}

// NewLogoutFailedError creates the one 500 with a specific message:
// the session store failed while destroying a record
func NewLogoutFailedError() error {
	return &httpError{http.StatusInternalServerError, "Failed to log out"}
}

// NewNotFoundError creates the 404 for unmatched routes
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, "Not found"}
}

// NewInternalError creates a generic 500 error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Internal server error"}
}
