package handlers

import (
	"FilesManager/internal/middleware"
	"FilesManager/internal/service"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// AuthHandler — вход и выход по токену сессии.
type AuthHandler struct {
	AuthService *service.AuthService
	Logger      *zap.SugaredLogger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{AuthService: authService, Logger: logger}
}

// Connect принимает Basic-креды (base64 email:password) и выдаёт токен.
func (h *AuthHandler) Connect(w http.ResponseWriter, r *http.Request) {
	email, password, ok := r.BasicAuth()
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	token, err := h.AuthService.Connect(r.Context(), email, password)
	if err != nil {
		if !errors.Is(err, service.ErrUnauthorized) {
			h.Logger.Errorw("Connect: service error", "error", err)
		}
		httpError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Disconnect отзывает токен. Ответ — 204 без тела.
func (h *AuthHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(middleware.TokenHeader)
	if err := h.AuthService.Disconnect(r.Context(), token); err != nil {
		if !errors.Is(err, service.ErrUnauthorized) {
			h.Logger.Errorw("Disconnect: service error", "error", err)
		}
		httpError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
