package service

import (
	"FilesManager/internal/cache"
	"FilesManager/internal/repo"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Префикс ключей сессий в кеше.
const authKeyPrefix = "auth_"

// AuthService выдаёт, проверяет и отзывает токены сессий.
// Токен непрозрачный (uuid); сопоставление token -> userID живёт в
// протухающем кеше, так что истечение сессии обеспечивает сам кеш.
type AuthService struct {
	users repo.UserRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewAuthService создаёт сервис сессий с заданным временем жизни токена.
func NewAuthService(users repo.UserRepository, c cache.Cache, ttl time.Duration) *AuthService {
	return &AuthService{users: users, cache: c, ttl: ttl}
}

// Connect проверяет пару email/пароль и выдаёт новый токен.
// Любая причина отказа (нет email, нет пользователя, неверный пароль)
// отдаётся одинаково как ErrUnauthorized.
func (s *AuthService) Connect(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrUnauthorized
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrUnauthorized
	}

	token := uuid.NewString()
	if err := s.cache.Set(ctx, authKeyPrefix+token, user.ID, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Disconnect немедленно отзывает токен, не дожидаясь TTL.
func (s *AuthService) Disconnect(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthorized
	}
	if _, err := s.cache.Get(ctx, authKeyPrefix+token); err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return ErrUnauthorized
		}
		return err
	}
	return s.cache.Del(ctx, authKeyPrefix+token)
}

// Resolve возвращает userID по токену. Через него проходит каждая
// защищённая операция.
func (s *AuthService) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}
	userID, err := s.cache.Get(ctx, authKeyPrefix+token)
	if errors.Is(err, cache.ErrMiss) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}
