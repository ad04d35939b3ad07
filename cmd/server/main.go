package main

import (
	"FilesManager/internal/cache"
	"FilesManager/internal/config"
	"FilesManager/internal/handlers"
	"FilesManager/internal/middleware"
	"FilesManager/internal/queue"
	"FilesManager/internal/repo"
	"FilesManager/internal/service"
	"FilesManager/internal/storage"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	sessionCache := cache.NewRedisCache(rdb)
	fileQueue := queue.NewRedisQueue(rdb, queue.DefaultKey)

	blobStore, err := storage.NewDiskStore(cfg.FolderPath)
	if err != nil {
		sugar.Fatalw("failed to initialize blob storage", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	fileRepo := repo.NewFileRepository(gormDB)

	appService := service.NewAppService(sessionCache, repo.NewPinger(gormDB), userRepo, fileRepo)
	authService := service.NewAuthService(userRepo, sessionCache, cfg.SessionTTL)
	userService := service.NewUserService(userRepo)
	fileService := service.NewFileService(fileRepo, blobStore, fileQueue, sugar)

	h := handlers.NewHandler(appService, authService, userService, fileService, sugar)

	sugar.Infow(
		"Starting server",
		"addr", cfg.Address,
	)

	sugar.Infow("Config",
		"Address", cfg.Address,
		"RedisAddr", cfg.RedisAddr,
		"FolderPath", cfg.FolderPath,
		"SessionTTL", cfg.SessionTTL,
	)

	if err := http.ListenAndServe(cfg.Address, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
