package handler

import (
	"errors"
	"net/http"

	"cycle-booking-service/internal/usecase"
	"cycle-booking-service/pkg/response"
)

// writeError maps a usecase error kind onto its HTTP status. Anything
// unclassified is reported as fallback with a 500.
func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, usecase.ErrSlotConflict):
		response.Conflict(w, err.Error())
	case errors.Is(err, usecase.ErrInvalidInput):
		response.BadRequest(w, err.Error())
	case errors.Is(err, usecase.ErrInvalidState):
		response.UnprocessableEntity(w, err.Error())
	case errors.Is(err, usecase.ErrUnauthorized):
		response.Forbidden(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
