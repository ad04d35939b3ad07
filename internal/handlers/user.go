package handlers

import (
	"FilesManager/internal/middleware"
	"FilesManager/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler — регистрация и профиль текущего пользователя.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger}
}

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Create регистрирует пользователя и возвращает {id, email}.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing email")
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, service.ErrMissingEmail) &&
			!errors.Is(err, service.ErrMissingPassword) &&
			!errors.Is(err, service.ErrEmailTaken) {
			h.Logger.Errorw("Create user: service error", "error", err)
		}
		httpError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"id":    user.ID,
		"email": user.Email,
	})
}

// Me отдаёт {id, email} владельца токена.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.UserService.GetByID(r.Context(), userID)
	if err != nil {
		if !errors.Is(err, service.ErrUnauthorized) {
			h.Logger.Errorw("Me: service error", "user_id", userID, "error", err)
		}
		httpError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"id":    user.ID,
		"email": user.Email,
	})
}
