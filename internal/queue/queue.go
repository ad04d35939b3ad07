package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKey — имя очереди заданий миниатюр в Redis.
const DefaultKey = "file_queue"

// Job — задание на генерацию миниатюр. Живёт только в очереди,
// в БД не сохраняется.
type Job struct {
	UserID string `json:"user_id"`
	FileID string `json:"file_id"`
}

// Enqueuer — сторона продьюсера. Хендлер загрузки не ждёт обработки:
// постановка в очередь — fire-and-forget.
type Enqueuer interface {
	Enqueue(ctx context.Context, job Job) error
}

// RedisQueue — очередь на Redis-списке: LPUSH при постановке,
// BRPOP при выборке.
type RedisQueue struct {
	rdb *redis.Client
	key string
}

// NewRedisQueue создаёт очередь поверх готового redis-клиента.
func NewRedisQueue(rdb *redis.Client, key string) *RedisQueue {
	if key == "" {
		key = DefaultKey
	}
	return &RedisQueue{rdb: rdb, key: key}
}

func (q *RedisQueue) Enqueue(ctx context.Context, job Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.rdb.LPush(ctx, q.key, payload).Err()
}

// Dequeue блокирующе забирает одно задание. Если за timeout ничего
// не пришло, возвращает (nil, nil).
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (*Job, error) {
	vals, err := q.rdb.BRPop(ctx, timeout, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// BRPop возвращает пару [key, value]
	if len(vals) != 2 {
		return nil, nil
	}
	var job Job
	if err := json.Unmarshal([]byte(vals[1]), &job); err != nil {
		return nil, err
	}
	return &job, nil
}
