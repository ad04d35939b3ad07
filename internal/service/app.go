package service

import (
	"FilesManager/internal/cache"
	"FilesManager/internal/repo"
	"context"
)

// AppService — служебные ручки /status и /stats.
type AppService struct {
	cache cache.Cache
	db    repo.Pinger
	users repo.UserRepository
	files repo.FileRepository
}

func NewAppService(c cache.Cache, db repo.Pinger, users repo.UserRepository, files repo.FileRepository) *AppService {
	return &AppService{cache: c, db: db, users: users, files: files}
}

// Status возвращает живость кеша и БД. Ошибки не отдаются наружу:
// недоступное хранилище — это просто false.
func (s *AppService) Status(ctx context.Context) (redisAlive, dbAlive bool) {
	redisAlive = s.cache.Ping(ctx) == nil
	dbAlive = s.db.Ping(ctx) == nil
	return redisAlive, dbAlive
}

// Stats возвращает число пользователей и записей файлов.
func (s *AppService) Stats(ctx context.Context) (users, files int64, err error) {
	users, err = s.users.CountUsers(ctx)
	if err != nil {
		return 0, 0, err
	}
	files, err = s.files.CountFiles(ctx)
	if err != nil {
		return 0, 0, err
	}
	return users, files, nil
}
