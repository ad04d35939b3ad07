package repo

import (
	"FilesManager/internal/model"
	"context"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB открывает подключение к Postgres и накатывает автомиграции
// для всех моделей сервиса.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.File{}); err != nil {
		return nil, err
	}

	return db, nil
}

// Pinger проверяет живость хранилища метаданных (для /status).
type Pinger interface {
	Ping(ctx context.Context) error
}

type dbPinger struct {
	db *gorm.DB
}

// NewPinger оборачивает gorm-подключение в Pinger.
func NewPinger(db *gorm.DB) Pinger {
	return &dbPinger{db: db}
}

func (p *dbPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
