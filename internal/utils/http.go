package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const contentTypeJSON = "application/json"

// marshalFailureBody is written instead of data when data cannot be encoded.
var marshalFailureBody = []byte(`{"detail":"internal server error"}`)

// WriteJSON encodes data and writes it with the given status code and a JSON
// content type. It returns the number of body bytes written.
//
// If data cannot be encoded, the blog's generic 500 error body is written
// instead and the encoding error is returned:
//
//	utils.WriteJSON(w, post, http.StatusCreated)
//	utils.WriteJSON(w, models.ErrorResponse{Detail: "Not found."}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", contentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(marshalFailureBody)
		return 0, fmt.Errorf("error encoding %T response: %w", data, err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
