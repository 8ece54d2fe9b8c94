package handler

import (
	"encoding/json"
	"net/http"

	"cycle-booking-service/pkg/response"
	"cycle-booking-service/pkg/validator"
)

const maxBodyBytes = 1 << 20

// bindJSON decodes the body into dst and validates it, writing the 400 itself.
func bindJSON(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, dst interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}

	if err := v.Validate(dst); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}
