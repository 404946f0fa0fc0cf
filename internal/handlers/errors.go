package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/diewo77/invoicegen/internal/httpx"
	"github.com/diewo77/invoicegen/internal/services"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// notFoundMsg names the entity without revealing whether it exists for another
// user.
func respondServiceError(w http.ResponseWriter, err error, notFoundMsg string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		httpx.JSONError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, services.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, notFoundMsg)
	default:
		log.Printf("internal error: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
