// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/boxjoy/pkg/httpx"
	collectiondomain "github.com/ghuser/boxjoy/services/collection/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, StatusFor(err), err.Error())
}

// WriteSafeError is WriteError with 5xx messages replaced by the status text
// in production, so storage paths and upstream details are not leaked.
func WriteSafeError(w http.ResponseWriter, err error, isProduction bool) {
	status := StatusFor(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, isProduction))
}

// StatusFor returns the HTTP status code err maps to.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, collectiondomain.ErrSeriesNotFound),
		errors.Is(err, collectiondomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, collectiondomain.ErrInvalidSeries),
		errors.Is(err, collectiondomain.ErrInvalidItem),
		errors.Is(err, collectiondomain.ErrInvalidImage):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, collectiondomain.ErrResetNotConfirmed):
		return http.StatusBadRequest // 400
	case errors.Is(err, collectiondomain.ErrClassificationFailed):
		return http.StatusBadGateway // 502
	case errors.Is(err, collectiondomain.ErrClassifierUnavailable):
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500, including ErrCorruptState
	}
}
