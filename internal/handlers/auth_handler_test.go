package handlers_test

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basicAuthGet(t *testing.T, env *testEnv, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/connect", nil)
	creds := base64.StdEncoding.EncodeToString([]byte(email + ":" + password))
	req.Header.Set("Authorization", "Basic "+creds)
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

func TestConnectHandler(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob@dylan.com", "toto1234!")

	t.Run("valid credentials return token", func(t *testing.T) {
		token := env.connect(t, "bob@dylan.com", "toto1234!")
		assert.NotEmpty(t, token)

		// токен сразу пригоден для авторизованных запросов
		rr := env.do(t, http.MethodGet, "/users/me", token, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		rr := basicAuthGet(t, env, "bob@dylan.com", "nope")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Unauthorized", errorBody(t, rr))
	})

	t.Run("unknown email", func(t *testing.T) {
		rr := basicAuthGet(t, env, "ghost@dylan.com", "toto1234!")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Unauthorized", errorBody(t, rr))
	})

	t.Run("no authorization header", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/connect", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestDisconnectHandler(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "bob@dylan.com", "toto1234!")
	token := env.connect(t, "bob@dylan.com", "toto1234!")

	rr := env.do(t, http.MethodGet, "/disconnect", token, nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	// сессия закрыта, токен больше не работает
	rr = env.do(t, http.MethodGet, "/users/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// повторный disconnect с тем же токеном
	rr = env.do(t, http.MethodGet, "/disconnect", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestDisconnectHandler_NoToken(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/disconnect", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Unauthorized", errorBody(t, rr))
}
