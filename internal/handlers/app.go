package handlers

import (
	"FilesManager/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// AppHandler — служебные ручки состояния сервиса.
type AppHandler struct {
	AppService *service.AppService
	Logger     *zap.SugaredLogger
}

func NewAppHandler(appService *service.AppService, logger *zap.SugaredLogger) *AppHandler {
	return &AppHandler{AppService: appService, Logger: logger}
}

// Status отдаёт живость Redis и БД.
func (h *AppHandler) Status(w http.ResponseWriter, r *http.Request) {
	redisAlive, dbAlive := h.AppService.Status(r.Context())
	writeJSON(w, http.StatusOK, map[string]bool{
		"redis": redisAlive,
		"db":    dbAlive,
	})
}

// Stats отдаёт счётчики пользователей и файлов.
func (h *AppHandler) Stats(w http.ResponseWriter, r *http.Request) {
	users, files, err := h.AppService.Stats(r.Context())
	if err != nil {
		h.Logger.Errorw("Stats: service error", "error", err)
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{
		"users": users,
		"files": files,
	})
}
