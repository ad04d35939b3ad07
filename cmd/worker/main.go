package main

import (
	"FilesManager/internal/config"
	"FilesManager/internal/queue"
	"FilesManager/internal/repo"
	"FilesManager/internal/storage"
	"FilesManager/internal/thumbs"
	"context"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Отдельный процесс генерации миниатюр: делит с сервером БД, Redis и
// каталог блобов, но живёт своим жизненным циклом.
func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
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
	fileQueue := queue.NewRedisQueue(rdb, queue.DefaultKey)

	blobStore, err := storage.NewDiskStore(cfg.FolderPath)
	if err != nil {
		sugar.Fatalw("failed to initialize blob storage", "error", err)
	}

	fileRepo := repo.NewFileRepository(gormDB)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker := thumbs.NewWorker(fileQueue, fileRepo, blobStore, sugar)
	worker.Run(ctx)
}
