package thumbs

import (
	"FilesManager/internal/model"
	"FilesManager/internal/queue"
	"FilesManager/internal/repo"
	"FilesManager/internal/storage"
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dequeuer — сторона консьюмера очереди заданий.
type Dequeuer interface {
	Dequeue(ctx context.Context, timeout time.Duration) (*queue.Job, error)
}

// Worker забирает задания по одному и генерирует производные блобы
// для записей типа image. Работает в отдельном процессе от сервера,
// связь только через очередь.
type Worker struct {
	queue  Dequeuer
	files  repo.FileRepository
	blobs  storage.BlobStore
	logger *zap.SugaredLogger
}

func NewWorker(q Dequeuer, files repo.FileRepository, blobs storage.BlobStore, logger *zap.SugaredLogger) *Worker {
	return &Worker{queue: q, files: files, blobs: blobs, logger: logger}
}

// Run крутит цикл выборки до отмены контекста. Задание обрабатывается
// до конца, прежде чем берётся следующее; ошибка задания логируется и
// цикл продолжается.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Infow("thumbnail worker started")
	for {
		if ctx.Err() != nil {
			w.logger.Infow("thumbnail worker stopped")
			return
		}

		job, err := w.queue.Dequeue(ctx, 5*time.Second)
		if err != nil {
			if ctx.Err() != nil {
				w.logger.Infow("thumbnail worker stopped")
				return
			}
			w.logger.Errorw("dequeue failed", "error", err)
			time.Sleep(time.Second)
			continue
		}
		if job == nil {
			continue
		}

		if err := w.Process(ctx, *job); err != nil {
			w.logger.Errorw("thumbnail job failed",
				"file_id", job.FileID, "user_id", job.UserID, "error", err)
			continue
		}
		w.logger.Infow("thumbnail job done", "file_id", job.FileID)
	}
}

// Process выполняет одно задание: проверяет поля, находит запись в
// рамках владельца, генерирует вариант на каждую ширину. Сбой одной
// ширины не блокирует остальные, но задание считается проваленным,
// если провалилась хоть одна. Повтор задания просто перезапишет уже
// созданные варианты — по пути это идемпотентно.
func (w *Worker) Process(ctx context.Context, job queue.Job) error {
	if job.FileID == "" || job.UserID == "" {
		return errors.New("missing fileId or userId")
	}

	f, err := w.files.GetOwned(ctx, job.UserID, job.FileID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.New("file not found")
	}
	if err != nil {
		return fmt.Errorf("fetch file: %w", err)
	}

	data, err := w.blobs.Read(f.LocalPath)
	if err != nil {
		return fmt.Errorf("read blob: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	var errs []error
	for _, width := range model.ThumbnailSizes {
		thumb, err := resize(img, format, width)
		if err != nil {
			errs = append(errs, fmt.Errorf("width %d: %w", width, err))
			continue
		}
		path := fmt.Sprintf("%s_%d", f.LocalPath, width)
		if err := w.blobs.WriteAt(path, thumb); err != nil {
			errs = append(errs, fmt.Errorf("width %d: %w", width, err))
		}
	}
	return errors.Join(errs...)
}
