package service

import (
	"FilesManager/internal/cache"
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakePinger struct{ err error }

func (p *fakePinger) Ping(ctx context.Context) error { return p.err }

func TestAppService_Status(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := cache.NewRedisCache(rdb)

	t.Run("all alive", func(t *testing.T) {
		svc := NewAppService(c, &fakePinger{}, nil, nil)
		redisAlive, dbAlive := svc.Status(ctx)
		assert.True(t, redisAlive)
		assert.True(t, dbAlive)
	})

	t.Run("db down", func(t *testing.T) {
		svc := NewAppService(c, &fakePinger{err: errors.New("down")}, nil, nil)
		redisAlive, dbAlive := svc.Status(ctx)
		assert.True(t, redisAlive)
		assert.False(t, dbAlive)
	})

	t.Run("redis down", func(t *testing.T) {
		mr.Close()
		svc := NewAppService(c, &fakePinger{}, nil, nil)
		redisAlive, dbAlive := svc.Status(ctx)
		assert.False(t, redisAlive)
		assert.True(t, dbAlive)
	})
}

func TestAppService_Stats(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := cache.NewRedisCache(rdb)

	users := new(mockUserRepo)
	files := new(mockFileRepo)
	users.On("CountUsers", mock.Anything).Return(int64(12), nil).Once()
	files.On("CountFiles", mock.Anything).Return(int64(1231), nil).Once()

	svc := NewAppService(c, &fakePinger{}, users, files)
	u, f, err := svc.Stats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), u)
	assert.Equal(t, int64(1231), f)
}
