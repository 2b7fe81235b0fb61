package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore-api/internal/domain"
	"gamestore-api/internal/errors"
	"gamestore-api/internal/service"
)

type stubRepository struct {
	accounts []domain.Account
	err      error
}

func (s *stubRepository) ListUsers(ctx context.Context) ([]domain.Account, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.accounts, nil
}

func (s *stubRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.Account, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.accounts {
		if s.accounts[i].Username == identifier || s.accounts[i].Email == identifier {
			return &s.accounts[i], nil
		}
	}
	return nil, nil
}

func (s *stubRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return &s.accounts[i], nil
		}
	}
	return nil, nil
}

type stubVerifier struct{}

func (stubVerifier) Verify(secret, hash string) (bool, error) {
	return hash == "hash:"+secret, nil
}

func newTestRouter(repo domain.AccountRepository) *mux.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authHandler := NewAuthHandler(service.NewAuthService(repo, stubVerifier{}, logger))
	accountHandler := NewAccountHandler(service.NewAccountService(repo, logger))

	router := mux.NewRouter()
	router.HandleFunc("/users", accountHandler.ListUsers).Methods("GET")
	router.HandleFunc("/users/{user_id}", accountHandler.GetUser).Methods("GET")
	router.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/auth/profile/{user_id}", authHandler.Profile).Methods("GET")
	return router
}

func seededRepository() *stubRepository {
	return &stubRepository{accounts: []domain.Account{{
		ID:            "acc-1",
		Username:      "alice",
		Email:         "alice@example.com",
		PasswordHash:  "hash:correctpw",
		Role:          domain.RoleUser,
		WalletBalance: decimal.RequireFromString("42.5000"),
		CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}}
}

func doRequest(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginEndpointSuccess(t *testing.T) {
	router := newTestRouter(seededRepository())

	rec := doRequest(t, router, http.MethodPost, "/auth/login", map[string]string{
		"identifier": "alice",
		"password":   "correctpw",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var outcome domain.LoginOutcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	assert.True(t, outcome.Success)
	require.NotNil(t, outcome.Account)
	assert.Equal(t, "alice", outcome.Account.Username)
	assert.Equal(t, "42.5", outcome.Account.WalletBalance)
	assert.NotContains(t, rec.Body.String(), "hash:")
}

func TestLoginEndpointWrongPassword(t *testing.T) {
	router := newTestRouter(seededRepository())

	rec := doRequest(t, router, http.MethodPost, "/auth/login", map[string]string{
		"identifier": "alice",
		"password":   "wrongpw",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var outcome domain.LoginOutcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	assert.False(t, outcome.Success)
	assert.Nil(t, outcome.Account)
	assert.Equal(t, "invalid credentials", outcome.Message)
}

func TestLoginEndpointUnknownIdentifier(t *testing.T) {
	router := newTestRouter(seededRepository())

	rec := doRequest(t, router, http.MethodPost, "/auth/login", map[string]string{
		"identifier": "nobody",
		"password":   "correctpw",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "account not found")
}

func TestLoginEndpointShortPassword(t *testing.T) {
	router := newTestRouter(seededRepository())

	rec := doRequest(t, router, http.MethodPost, "/auth/login", map[string]string{
		"identifier": "alice",
		"password":   "short",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least 6 characters")
}

func TestLoginEndpointMalformedBody(t *testing.T) {
	router := newTestRouter(seededRepository())

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "invalid request body", envelope.Message)
}

func TestLoginEndpointStoreFailure(t *testing.T) {
	router := newTestRouter(&stubRepository{err: errors.NewAppError(errors.StoreError, "failed to fetch account")})

	rec := doRequest(t, router, http.MethodPost, "/auth/login", map[string]string{
		"identifier": "alice",
		"password":   "correctpw",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// The stored cause never reaches the wire.
	assert.NotContains(t, rec.Body.String(), "details")
}

func TestListUsersEndpoint(t *testing.T) {
	router := newTestRouter(seededRepository())

	rec := doRequest(t, router, http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                 `json:"success"`
		Data    []domain.AccountView `json:"data"`
		Message string               `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "alice", envelope.Data[0].Username)
}

func TestListUsersEndpointStoreFailure(t *testing.T) {
	router := newTestRouter(&stubRepository{err: errors.NewAppError(errors.StoreError, "failed to list users")})

	rec := doRequest(t, router, http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
}

func TestGetUserEndpointNotFound(t *testing.T) {
	router := newTestRouter(seededRepository())

	rec := doRequest(t, router, http.MethodGet, "/users/acc-404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "account not found", envelope.Message)
}

func TestGetUserEndpoint(t *testing.T) {
	router := newTestRouter(seededRepository())

	rec := doRequest(t, router, http.MethodGet, "/users/acc-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestProfileEndpoint(t *testing.T) {
	router := newTestRouter(seededRepository())

	rec := doRequest(t, router, http.MethodGet, "/auth/profile/acc-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)

	missing := doRequest(t, router, http.MethodGet, "/auth/profile/acc-404", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}
