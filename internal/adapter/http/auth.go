package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"adrewards/internal/core/port"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleRegister creates a user account and returns a bearer token.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	result, err := h.auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, port.ErrEmailTaken) {
			h.writeError(w, http.StatusConflict, "Email already registered")
			return
		}
		h.writeUsecaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, result)
}

// handleLogin verifies credentials and returns a bearer token. Failed
// and throttled attempts use distinct statuses so clients can back off.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	result, err := h.auth.Login(r.Context(), req.Email, req.Password, clientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, port.ErrInvalidCredentials):
			h.writeError(w, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, port.ErrRateLimited):
			h.writeError(w, http.StatusTooManyRequests, "Too many login attempts")
		default:
			h.writeUsecaseError(w, err)
		}
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}
