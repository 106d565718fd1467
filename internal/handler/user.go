package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eduliv/eduliv-go/internal/middleware"
	"github.com/eduliv/eduliv-go/internal/model"
	"github.com/eduliv/eduliv-go/internal/service"
)

// UserHandler handles HTTP requests for user registration and the current
// user projection.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleCreate handles POST /api/v1/users requests.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("validationError"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("validationError"))
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			writeJSON(w, http.StatusBadRequest, errorResponse("validationError"))
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, errorResponse("alreadyExists"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internalError"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, successResponse(resp))
}

// HandleMe handles GET /api/v1/users/me requests. The session middleware has
// already verified the token; the directory lookup here still rejects a valid
// token whose user no longer exists.
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	resp, err := h.service.Session(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internalError"))
		return
	}

	writeJSON(w, http.StatusOK, successResponse(resp))
}
