package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/ruleset"
)

// Error codes carried in ErrorDetail.Code.
const (
	CodeNotFound             = "not_found"
	CodeBadRequest           = "bad_request"
	CodeUnsupportedMediaType = "unsupported_media_type"
	CodeRequestTooLarge      = "request_too_large"
	CodeConfiguration        = "configuration_error"
	CodeInternal             = "internal_error"
)

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

type errorResponse struct {
	Error *ErrorDetail `json:"error"`
}

// ValidationResult is the body of a validate response.
type ValidationResult struct {
	Valid       bool                `json:"valid"`
	Data        map[string]any      `json:"data"`
	Errors      map[string][]string `json:"errors"`
	FirstErrors map[string]string   `json:"first_errors"`
}

// FormInfo describes one catalog entry.
type FormInfo struct {
	Name    string   `json:"name"`
	Source  string   `json:"source,omitempty"`
	Fields  []string `json:"fields"`
	Rules   int      `json:"rules"`
	Filters int      `json:"filters"`
}

type formsResponse struct {
	Forms []string `json:"forms"`
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// errorToDetail maps err to a status code and detail.
func errorToDetail(err error) (int, *ErrorDetail) {
	switch {
	case errors.Is(err, ruleset.ErrFormNotFound):
		return http.StatusNotFound, &ErrorDetail{Code: CodeNotFound, Message: err.Error()}
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return http.StatusUnsupportedMediaType, &ErrorDetail{Code: CodeUnsupportedMediaType, Message: err.Error()}
	case errors.Is(err, binder.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, &ErrorDetail{Code: CodeRequestTooLarge, Message: err.Error()}
	case errors.Is(err, binder.ErrInvalidJSON), errors.Is(err, binder.ErrInvalidForm), errors.Is(err, binder.ErrInvalidQuery):
		return http.StatusBadRequest, &ErrorDetail{Code: CodeBadRequest, Message: err.Error()}
	case form.IsUnresolvedAction(err):
		return http.StatusInternalServerError, &ErrorDetail{Code: CodeConfiguration, Message: err.Error()}
	default:
		return http.StatusInternalServerError, &ErrorDetail{Code: CodeInternal, Message: http.StatusText(http.StatusInternalServerError)}
	}
}
