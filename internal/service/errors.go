package service

import "errors"

// Сентинельные ошибки слоя сервисов. Хендлеры переводят их в коды
// ответа через errors.Is; всё прочее — 500.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	ErrMissingEmail    = errors.New("missing email")
	ErrMissingPassword = errors.New("missing password")
	ErrEmailTaken      = errors.New("email already exist")

	ErrMissingName     = errors.New("missing name")
	ErrMissingType     = errors.New("missing type")
	ErrMissingData     = errors.New("missing data")
	ErrInvalidData     = errors.New("invalid data")
	ErrParentNotFound  = errors.New("parent not found")
	ErrParentNotFolder = errors.New("parent is not a folder")

	ErrFolderNoContent = errors.New("a folder doesn't have content")
	ErrInvalidSize     = errors.New("invalid size")
)
