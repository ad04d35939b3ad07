package handlers

import (
	"FilesManager/internal/middleware"
	"FilesManager/internal/model"
	"FilesManager/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FileHandler — загрузка, выборка, листинг, публикация и выдача
// содержимого файлов.
type FileHandler struct {
	FileService *service.FileService
	Logger      *zap.SugaredLogger
}

func NewFileHandler(fileService *service.FileService, logger *zap.SugaredLogger) *FileHandler {
	return &FileHandler{FileService: fileService, Logger: logger}
}

type uploadRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID any    `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}

// normalizeParent приводит parentId с провода к единому виду:
// отсутствие, null, "", 0 и "0" означают корень (nil).
func normalizeParent(v any) *string {
	switch p := v.(type) {
	case string:
		if p == "" || p == "0" {
			return nil
		}
		return &p
	case float64:
		if p == 0 {
			return nil
		}
		s := strconv.FormatFloat(p, 'f', -1, 64)
		return &s
	default:
		return nil
	}
}

// Upload создаёт папку или файл. Для image после сохранения ставится
// фоновое задание на миниатюры, ответ его не ждёт.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing name")
		return
	}

	f, err := h.FileService.Create(r.Context(), userID, service.CreateRequest{
		Name:     req.Name,
		Type:     req.Type,
		ParentID: normalizeParent(req.ParentID),
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		if !isValidationError(err) {
			h.Logger.Errorw("Upload: service error", "user_id", userID, "error", err)
		}
		httpError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, f)
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrMissingName) ||
		errors.Is(err, service.ErrMissingType) ||
		errors.Is(err, service.ErrMissingData) ||
		errors.Is(err, service.ErrInvalidData) ||
		errors.Is(err, service.ErrParentNotFound) ||
		errors.Is(err, service.ErrParentNotFolder)
}

// Show отдаёт запись по id в рамках владения.
func (h *FileHandler) Show(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	f, err := h.FileService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		if !errors.Is(err, service.ErrNotFound) {
			h.Logger.Errorw("Show: service error", "user_id", userID, "error", err)
		}
		httpError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, f)
}

// Index отдаёт страницу записей пользователя. parentId опционален,
// page с нуля, размер страницы фиксированный.
func (h *FileHandler) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	page := 0
	if p := r.URL.Query().Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	parentID := normalizeParent(r.URL.Query().Get("parentId"))

	files, err := h.FileService.List(r.Context(), userID, parentID, page)
	if err != nil {
		h.Logger.Errorw("Index: service error", "user_id", userID, "error", err)
		httpError(w, err)
		return
	}

	if files == nil {
		files = []model.File{}
	}
	writeJSON(w, http.StatusOK, files)
}

// Publish делает запись публичной.
func (h *FileHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.setPublic(w, r, true)
}

// Unpublish закрывает публичный доступ.
func (h *FileHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setPublic(w, r, false)
}

func (h *FileHandler) setPublic(w http.ResponseWriter, r *http.Request, public bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	f, err := h.FileService.SetPublic(r.Context(), userID, chi.URLParam(r, "id"), public)
	if err != nil {
		if !errors.Is(err, service.ErrNotFound) {
			h.Logger.Errorw("SetPublic: service error", "user_id", userID, "error", err)
		}
		httpError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, f)
}

// Data отдаёт содержимое блоба. Токен необязателен: публичные записи
// доступны анониму, приватные — только владельцу.
func (h *FileHandler) Data(w http.ResponseWriter, r *http.Request) {
	// анонимный доступ допустим, поэтому отсутствие userID не ошибка
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	size := 0
	if s := r.URL.Query().Get("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid size")
			return
		}
		size = n
	}

	data, f, err := h.FileService.Content(r.Context(), userID, chi.URLParam(r, "id"), size)
	if err != nil {
		if !errors.Is(err, service.ErrNotFound) &&
			!errors.Is(err, service.ErrFolderNoContent) &&
			!errors.Is(err, service.ErrInvalidSize) {
			h.Logger.Errorw("Data: service error", "error", err)
		}
		httpError(w, err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(f.Name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprint(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
