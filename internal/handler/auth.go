package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"micronotes/internal/apperror"
	"micronotes/internal/auth"
	"micronotes/internal/model"
	"micronotes/internal/service"
)

// AuthHandler exposes signup, login, and the identity echo.
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// credentialsRequest is the body of both signup and login.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse echoes the minimal user alongside the token so clients can
// stash identity state without a second request.
type loginResponse struct {
	AccessToken string      `json:"access_token"`
	User        *model.User `json:"user"`
}

// HandleSignup creates an account.
//
// HTTP: POST /auth/signup
// 201 {id,email} | 400 missing fields | 409 email taken
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	user, err := h.auth.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// HandleLogin verifies credentials and returns the access token.
//
// HTTP: POST /auth/login
// 200 {access_token,user} | 401 invalid credentials
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "invalid JSON body"))
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: result.Token,
		User:        result.User,
	})
}

// HandleMe returns the authenticated user's current record, re-read from
// the store so a stale token for a deleted user yields 404.
//
// HTTP: GET /auth/me (token required)
// 200 {id,email} | 404 user no longer exists
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		// Unreachable behind RequireAuth; kept as a guard.
		writeError(w, apperror.Unauthorized("unauthorized"))
		return
	}

	user, err := h.auth.Me(r.Context(), identity.Subject)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
