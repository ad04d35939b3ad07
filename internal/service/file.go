package service

import (
	"FilesManager/internal/model"
	"FilesManager/internal/queue"
	"FilesManager/internal/repo"
	"FilesManager/internal/storage"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FileService — операции над файлами и папками: создание, выборка,
// листинг, публикация и выдача содержимого.
type FileService struct {
	files  repo.FileRepository
	blobs  storage.BlobStore
	queue  queue.Enqueuer
	logger *zap.SugaredLogger
}

func NewFileService(files repo.FileRepository, blobs storage.BlobStore, q queue.Enqueuer, logger *zap.SugaredLogger) *FileService {
	return &FileService{files: files, blobs: blobs, queue: q, logger: logger}
}

// CreateRequest — проверенный вход операции создания.
// ParentID == nil означает корень; Data — base64 содержимого,
// пустая строка допустима только для папки.
type CreateRequest struct {
	Name     string
	Type     string
	ParentID *string
	IsPublic bool
	Data     string
}

// Create выполняет цепочку валидаций и сохраняет запись.
// Для file/image блоб пишется на диск до вставки метаданных, чтобы
// ошибка записи не оставила запись без содержимого. Для image после
// вставки ставится задание на миниатюры; сбой постановки только
// логируется и на ответ не влияет.
func (s *FileService) Create(ctx context.Context, userID string, req CreateRequest) (*model.File, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}
	if !model.ValidType(req.Type) {
		return nil, ErrMissingType
	}
	if req.Type != model.TypeFolder && req.Data == "" {
		return nil, ErrMissingData
	}

	if req.ParentID != nil {
		// Между этой проверкой и вставкой родитель может исчезнуть —
		// принятая гонка, многодокументных транзакций здесь нет.
		parent, err := s.files.GetByID(ctx, *req.ParentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentNotFound
		}
		if err != nil {
			return nil, err
		}
		if parent.Type != model.TypeFolder {
			return nil, ErrParentNotFolder
		}
	}

	f := &model.File{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     req.Name,
		Type:     req.Type,
		ParentID: req.ParentID,
		IsPublic: req.IsPublic,
	}

	if req.Type != model.TypeFolder {
		raw, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			return nil, ErrInvalidData
		}
		path, err := s.blobs.Save(raw)
		if err != nil {
			return nil, fmt.Errorf("save blob: %w", err)
		}
		f.LocalPath = path
	}

	if err := s.files.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("create file record: %w", err)
	}

	if req.Type == model.TypeImage {
		if err := s.queue.Enqueue(ctx, queue.Job{UserID: userID, FileID: f.ID}); err != nil {
			s.logger.Errorw("failed to enqueue thumbnail job",
				"file_id", f.ID, "user_id", userID, "error", err)
		}
	}

	return f, nil
}

// Get возвращает запись пользователя по id.
func (s *FileService) Get(ctx context.Context, userID, id string) (*model.File, error) {
	f, err := s.files.GetOwned(ctx, userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// List возвращает страницу записей пользователя.
func (s *FileService) List(ctx context.Context, userID string, parentID *string, page int) ([]model.File, error) {
	return s.files.List(ctx, userID, parentID, page)
}

// SetPublic выставляет флаг публичности. Повторная установка того же
// значения — no-op с успехом.
func (s *FileService) SetPublic(ctx context.Context, userID, id string, public bool) (*model.File, error) {
	f, err := s.files.GetOwned(ctx, userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if f.IsPublic != public {
		if err := s.files.SetPublic(ctx, id, public); err != nil {
			return nil, err
		}
		f.IsPublic = public
	}
	return f, nil
}

// Content отдаёт байты блоба записи. Доступ: запись публична либо
// вызывающий — владелец; иначе ErrNotFound (не Forbidden, чтобы не
// раскрывать существование записи). callerID == "" — аноним.
// size != 0 читает производный блоб <localPath>_<size>; отсутствующий
// вариант не регенерируется.
func (s *FileService) Content(ctx context.Context, callerID, id string, size int) ([]byte, *model.File, error) {
	f, err := s.files.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	if !f.IsPublic && (callerID == "" || callerID != f.UserID) {
		return nil, nil, ErrNotFound
	}

	if f.Type == model.TypeFolder {
		return nil, nil, ErrFolderNoContent
	}

	path := f.LocalPath
	if size != 0 {
		if !validSize(size) {
			return nil, nil, ErrInvalidSize
		}
		path = fmt.Sprintf("%s_%d", path, size)
	}

	data, err := s.blobs.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	return data, f, nil
}

func validSize(size int) bool {
	for _, s := range model.ThumbnailSizes {
		if s == size {
			return true
		}
	}
	return false
}
