package handler

import (
	"encoding/json"
	"net/http"

	"gamestore-api/internal/errors"
)

// Envelope is the uniform wire wrapper around every response body.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	writeJSON(w, statusCode, Envelope{Success: true, Data: data, Message: message})
}

// writeError renders an AppError as a failure envelope. Details stay
// server-side; only the taxonomy message reaches the client.
func writeError(w http.ResponseWriter, appErr *errors.AppError) {
	writeJSON(w, appErr.HTTPStatus(), Envelope{Success: false, Message: appErr.Message})
}

// asAppError normalizes unexpected error values so every failure path
// renders through the same closed taxonomy.
func asAppError(err error) *errors.AppError {
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr
	}
	return errors.NewAppError(errors.InternalError, "an unexpected error occurred")
}
