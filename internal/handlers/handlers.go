package handlers

import (
	"FilesManager/internal/middleware"
	"FilesManager/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	appService *service.AppService,
	authService *service.AuthService,
	userService *service.UserService,
	fileService *service.FileService,
	logger *zap.SugaredLogger,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(authService))

	// Handlers
	appHandler := NewAppHandler(appService, logger)
	authHandler := NewAuthHandler(authService, logger)
	userHandler := NewUserHandler(userService, logger)
	fileHandler := NewFileHandler(fileService, logger)

	// Service routes
	r.Get("/status", appHandler.Status)
	r.Get("/stats", appHandler.Stats)

	// Auth routes
	r.Get("/connect", authHandler.Connect)
	r.Get("/disconnect", authHandler.Disconnect)

	// User routes
	r.Post("/users", userHandler.Create)
	r.Get("/users/me", userHandler.Me)

	// File routes
	r.Post("/files", fileHandler.Upload)
	r.Get("/files", fileHandler.Index)
	r.Get("/files/{id}", fileHandler.Show)
	r.Put("/files/{id}/publish", fileHandler.Publish)
	r.Put("/files/{id}/unpublish", fileHandler.Unpublish)
	r.Get("/files/{id}/data", fileHandler.Data)

	return &Handler{Router: r}
}
