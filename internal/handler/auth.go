package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eduliv/eduliv-go/internal/model"
	"github.com/eduliv/eduliv-go/internal/service"
	"github.com/eduliv/eduliv-go/internal/session"
)

// AuthHandler handles HTTP requests for the session-authentication flow.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleLogin handles POST /api/v1/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("validationError"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("validationError"))
		return
	}

	err := h.service.Login(r.Context(), session.NewJar(w, r), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			writeJSON(w, http.StatusBadRequest, errorResponse("validationError"))
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, errorResponse("invalidCredentials"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internalError"))
		}
		return
	}

	writeJSON(w, http.StatusOK, successResponse(nil))
}

// HandleLogout handles POST /api/v1/auth/logout requests.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(session.NewJar(w, r)); err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	writeJSON(w, http.StatusOK, successResponse(nil))
}

// HandleVerify handles GET /api/v1/auth/verify requests.
func (h *AuthHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	_, err := h.service.VerifySession(r.Context(), session.NewJar(w, r))
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internalError"))
		return
	}

	writeJSON(w, http.StatusOK, successResponse(nil))
}
