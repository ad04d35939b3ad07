package storage

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// BlobStore хранит сырые байты файлов. Пути генерируются хранилищем
// и не связаны с отображаемым именем записи.
type BlobStore interface {
	// Save кладёт данные в новый блоб и возвращает его путь.
	Save(data []byte) (string, error)

	// WriteAt пишет данные по готовому пути (производные варианты
	// миниатюр). Существующий блоб перезаписывается.
	WriteAt(path string, data []byte) error

	// Read возвращает содержимое блоба. Отсутствие файла отдаётся
	// как ошибка os.ErrNotExist.
	Read(path string) ([]byte, error)
}

// DiskStore — локальное дисковое хранилище под одним каталогом.
type DiskStore struct {
	basePath string
}

// NewDiskStore создаёт каталог хранилища, если его ещё нет.
func NewDiskStore(basePath string) (*DiskStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{basePath: basePath}, nil
}

func (s *DiskStore) Save(data []byte) (string, error) {
	path := filepath.Join(s.basePath, uuid.NewString())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (s *DiskStore) WriteAt(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func (s *DiskStore) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}
