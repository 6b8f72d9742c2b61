package handler

import (
	"errors"
	"net/http"

	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/httputil"
)

// handleError converts domain errors to HTTP responses. Anything without a
// domain mapping becomes a generic 500; internal detail never reaches the
// client.
func handleError(w http.ResponseWriter, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
