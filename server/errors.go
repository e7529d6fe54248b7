package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/katalvlaran/gridroute/grid"
)

// ParsingError indicates that the request body could not be decoded.
type ParsingError struct {
	Err error
}

func (e *ParsingError) Error() string { return "server: parsing request body: " + e.Err.Error() }

func (e *ParsingError) Unwrap() error { return e.Err }

// RequiredError indicates that a required request field is missing.
type RequiredError struct {
	Field string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("server: required field '%s' is zero value", e.Field)
}

// ErrorHandler writes an error response for err.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

// DefaultErrorHandler maps request and grid errors to 4xx codes and
// everything else to 500.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	EncodeJSONResponse(errorBody{Error: err.Error()}, statusFor(err), w)
}

func statusFor(err error) int {
	var (
		parsing  *ParsingError
		required *RequiredError
	)
	switch {
	case errors.As(err, &parsing), errors.As(err, &required):
		return http.StatusBadRequest
	case errors.Is(err, grid.ErrEmptyGrid),
		errors.Is(err, grid.ErrNonRectangular),
		errors.Is(err, grid.ErrUnknownSymbol):
		return http.StatusBadRequest
	case errors.Is(err, grid.ErrNotFound), errors.Is(err, grid.ErrDuplicateSymbol):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// EncodeJSONResponse writes i as JSON with the given status code.
func EncodeJSONResponse(i interface{}, status int, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(i)
}
