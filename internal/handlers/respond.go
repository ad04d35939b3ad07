package handlers

import (
	"FilesManager/internal/service"
	"encoding/json"
	"errors"
	"net/http"
)

// writeJSON сериализует тело ответа с нужным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError отдаёт тело вида {"error": "..."}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// httpError переводит сентинельные ошибки сервисов в статус и текст
// ответа. Неизвестные ошибки — 500 без деталей.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrMissingEmail):
		writeError(w, http.StatusBadRequest, "Missing email")
	case errors.Is(err, service.ErrMissingPassword):
		writeError(w, http.StatusBadRequest, "Missing password")
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "Already exist")
	case errors.Is(err, service.ErrMissingName):
		writeError(w, http.StatusBadRequest, "Missing name")
	case errors.Is(err, service.ErrMissingType):
		writeError(w, http.StatusBadRequest, "Missing type")
	case errors.Is(err, service.ErrMissingData):
		writeError(w, http.StatusBadRequest, "Missing data")
	case errors.Is(err, service.ErrInvalidData):
		writeError(w, http.StatusBadRequest, "Invalid data")
	case errors.Is(err, service.ErrParentNotFound):
		writeError(w, http.StatusBadRequest, "Parent not found")
	case errors.Is(err, service.ErrParentNotFolder):
		writeError(w, http.StatusBadRequest, "Parent is not a folder")
	case errors.Is(err, service.ErrFolderNoContent):
		writeError(w, http.StatusBadRequest, "A folder doesn't have content")
	case errors.Is(err, service.ErrInvalidSize):
		writeError(w, http.StatusBadRequest, "Invalid size")
	default:
		writeError(w, http.StatusInternalServerError, "Internal error")
	}
}
