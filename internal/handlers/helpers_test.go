package handlers_test

import (
	"FilesManager/internal/cache"
	"FilesManager/internal/handlers"
	"FilesManager/internal/model"
	"FilesManager/internal/queue"
	"FilesManager/internal/repo"
	"FilesManager/internal/service"
	"FilesManager/internal/storage"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// recordQueue запоминает поставленные задания вместо Redis.
type recordQueue struct {
	mu   sync.Mutex
	jobs []queue.Job
}

func (q *recordQueue) Enqueue(ctx context.Context, job queue.Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordQueue) Jobs() []queue.Job {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]queue.Job(nil), q.jobs...)
}

// testEnv — полный стенд: реальные сервисы поверх in-memory SQLite,
// miniredis и временного каталога блобов.
type testEnv struct {
	router http.Handler
	redis  *miniredis.Miniredis
	blobs  storage.BlobStore
	queue  *recordQueue
	files  repo.FileRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: fmt.Sprintf("file:%s?mode=memory&cache=shared", name)}
	db, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.File{}))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessionCache := cache.NewRedisCache(rdb)

	blobs, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	q := &recordQueue{}
	logger := zap.NewNop().Sugar()

	userRepo := repo.NewUserRepository(db)
	fileRepo := repo.NewFileRepository(db)

	appSvc := service.NewAppService(sessionCache, repo.NewPinger(db), userRepo, fileRepo)
	authSvc := service.NewAuthService(userRepo, sessionCache, time.Hour)
	userSvc := service.NewUserService(userRepo)
	fileSvc := service.NewFileService(fileRepo, blobs, q, logger)

	h := handlers.NewHandler(appSvc, authSvc, userSvc, fileSvc, logger)
	return &testEnv{router: h.Router, redis: mr, blobs: blobs, queue: q, files: fileRepo}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Token", token)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// register создаёт пользователя через API и возвращает его id.
func (e *testEnv) register(t *testing.T, email, password string) string {
	t.Helper()
	rr := e.do(t, http.MethodPost, "/users", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusCreated, rr.Code, "register body: %s", rr.Body.String())

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.ID
}

// connect логинится по Basic-кредам и возвращает токен.
func (e *testEnv) connect(t *testing.T, email, password string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/connect", nil)
	creds := base64.StdEncoding.EncodeToString([]byte(email + ":" + password))
	req.Header.Set("Authorization", "Basic "+creds)
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, "connect body: %s", rr.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Token
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}
