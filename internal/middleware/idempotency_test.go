package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ProfileJass/Incapacities/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

const idempotentBody = `{"success":true,"message":"Incapacity created successfully"}`

func setupIdempotencyRouter(handlerCalled *bool) (*gin.Engine, redismock.ClientMock) {
	gin.SetMode(gin.TestMode)
	db, mock := redismock.NewClientMock()

	r := gin.New()
	r.POST("/incapacities", middleware.Idempotency(db), func(c *gin.Context) {
		if handlerCalled != nil {
			*handlerCalled = true
		}
		c.String(http.StatusCreated, idempotentBody)
	})
	return r, mock
}

func TestIdempotency(t *testing.T) {
	cacheKey := "idemp:/incapacities:192.0.2.1:key-123"
	lockKey := cacheKey + ":lock"

	t.Run("first request stores response and releases lock", func(t *testing.T) {
		called := false
		r, mock := setupIdempotencyRouter(&called)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, idempotentBody, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/incapacities", strings.NewReader(`{}`))
		req.RemoteAddr = "192.0.2.1:52100"
		req.Header.Set("Idempotency-Key", "key-123")
		r.ServeHTTP(w, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, idempotentBody, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat request replays without reaching the handler", func(t *testing.T) {
		called := false
		r, mock := setupIdempotencyRouter(&called)

		mock.ExpectGet(cacheKey).SetVal(idempotentBody)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/incapacities", strings.NewReader(`{}`))
		req.RemoteAddr = "192.0.2.1:52101"
		req.Header.Set("Idempotency-Key", "key-123")
		r.ServeHTTP(w, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", w.Header().Get("X-Idempotent-Replay"))
		assert.Equal(t, idempotentBody, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate is rejected with conflict", func(t *testing.T) {
		called := false
		r, mock := setupIdempotencyRouter(&called)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/incapacities", strings.NewReader(`{}`))
		req.RemoteAddr = "192.0.2.1:52102"
		req.Header.Set("Idempotency-Key", "key-123")
		r.ServeHTTP(w, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("request without key bypasses redis entirely", func(t *testing.T) {
		called := false
		r, mock := setupIdempotencyRouter(&called)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/incapacities", strings.NewReader(`{}`))
		req.RemoteAddr = "192.0.2.1:52103"
		r.ServeHTTP(w, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
