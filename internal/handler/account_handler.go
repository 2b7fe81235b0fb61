package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"gamestore-api/internal/service"
)

type AccountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// ListUsers serves GET /users.
func (h *AccountHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	views, err := h.accountService.ListUsers(r.Context())
	if err != nil {
		writeError(w, asAppError(err))
		return
	}

	writeSuccess(w, http.StatusOK, views, "users fetched")
}

// GetUser serves GET /users/{user_id}.
func (h *AccountHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["user_id"]

	view, err := h.accountService.GetAccount(r.Context(), userID)
	if err != nil {
		writeError(w, asAppError(err))
		return
	}

	writeSuccess(w, http.StatusOK, view, "user fetched")
}
