package server

import (
	"encoding/json"
	"net/http"

	"gamestore-api/internal/handler"
	"gamestore-api/internal/repository"
)

func helloHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(handler.Envelope{
		Success: true,
		Data:    "Hello from Game Store API!",
		Message: "welcome",
	})
}

func healthHandler(store *repository.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := store.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(handler.Envelope{
				Success: false,
				Message: "database unavailable",
			})
			return
		}

		json.NewEncoder(w).Encode(handler.Envelope{
			Success: true,
			Data:    "API is running",
			Message: "healthy",
		})
	}
}
