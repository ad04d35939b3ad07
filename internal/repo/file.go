package repo

import (
	"FilesManager/internal/model"
	"context"

	"gorm.io/gorm"
)

// PageSize — фиксированный размер страницы листинга.
const PageSize = 20

// FileRepository — контракт доступа к записям файлов/папок.
type FileRepository interface {
	// Create вставляет новую запись.
	Create(ctx context.Context, f *model.File) error

	// GetByID возвращает запись по id без учёта владельца,
	// gorm.ErrRecordNotFound если её нет.
	GetByID(ctx context.Context, id string) (*model.File, error)

	// GetOwned возвращает запись по id, принадлежащую пользователю.
	GetOwned(ctx context.Context, userID, id string) (*model.File, error)

	// List возвращает страницу записей пользователя в порядке вставки.
	// parentID == nil — без фильтра по родителю. Страницы с нуля.
	List(ctx context.Context, userID string, parentID *string, page int) ([]model.File, error)

	// SetPublic выставляет флаг публичности записи.
	SetPublic(ctx context.Context, id string, public bool) error

	// CountFiles — общее число записей (для /stats).
	CountFiles(ctx context.Context) (int64, error)
}

type fileRepo struct {
	db *gorm.DB
}

// NewFileRepository создаёт реализацию репозитория для File.
func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepo{db: db}
}

func (r *fileRepo) Create(ctx context.Context, f *model.File) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *fileRepo) GetByID(ctx context.Context, id string) (*model.File, error) {
	var f model.File
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fileRepo) GetOwned(ctx context.Context, userID, id string) (*model.File, error) {
	var f model.File
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fileRepo) List(ctx context.Context, userID string, parentID *string, page int) ([]model.File, error) {
	if page < 0 {
		page = 0
	}
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if parentID != nil {
		q = q.Where("parent_id = ?", *parentID)
	}

	var files []model.File
	err := q.Order("created_at, id").
		Offset(page * PageSize).
		Limit(PageSize).
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *fileRepo) SetPublic(ctx context.Context, id string, public bool) error {
	return r.db.WithContext(ctx).
		Model(&model.File{}).
		Where("id = ?", id).
		Update("is_public", public).Error
}

func (r *fileRepo) CountFiles(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.File{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
