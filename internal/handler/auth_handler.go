package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gamestore-api/internal/domain"
	"gamestore-api/internal/errors"
	"gamestore-api/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Login renders the LoginOutcome body directly (not the generic
// envelope): 200 on success, 400 on bad input, 401 on unknown
// identifier or wrong password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.ValidationError, "invalid request body"))
		return
	}

	outcome, err := h.authService.Login(r.Context(), req.Identifier, req.Password)
	if err != nil {
		writeError(w, asAppError(err))
		return
	}

	writeJSON(w, loginStatus(outcome), outcome)
}

func loginStatus(outcome *domain.LoginOutcome) int {
	switch outcome.Failure {
	case domain.LoginInvalidInput:
		return http.StatusBadRequest
	case domain.LoginUnknownAccount, domain.LoginWrongPassword:
		return http.StatusUnauthorized
	default:
		return http.StatusOK
	}
}

// Profile serves GET /auth/profile/{user_id}.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["user_id"]

	view, err := h.authService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, asAppError(err))
		return
	}
	if view == nil {
		writeError(w, errors.ErrAccountNotFound)
		return
	}

	writeSuccess(w, http.StatusOK, view, "profile fetched")
}
