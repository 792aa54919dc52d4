package utils

import (
	"encoding/json"
	"net/http"

	"RENTWHEELS_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a JSON error body of the form {"error": message}.
// Messages are generic by contract; store-level error text is logged, never echoed.
func WriteErrorResponse(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: message})
}

// DecodeJSONRequest decodes the request body into dst. On failure it
// writes a 400 response and returns the error, so callers can just return.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return err
	}
	return nil
}
