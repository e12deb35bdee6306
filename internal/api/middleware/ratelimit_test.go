package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akshara/clinic-queue/internal/config"
	"akshara/clinic-queue/internal/constant"
)

func newLimitedRouter(m *RateLimitMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/queue", m.Handle, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func doRequest(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/queue", nil)
	req.RemoteAddr = "203.0.113.9:51234"
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimit_FirstRequestSetsExpiry(t *testing.T) {
	client, mock := redismock.NewClientMock()
	m := NewRateLimitMiddleware(client, config.RateLimit{WindowMinutes: 10, MaxRequests: 120})
	router := newLimitedRouter(m)

	key := fmt.Sprintf("%s%s", constant.RateLimitKeyPrefix, "203.0.113.9")
	mock.ExpectIncr(key).SetVal(1)
	mock.ExpectExpire(key, 10*time.Minute).SetVal(true)

	w := doRequest(router)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimit_UnderLimitPassesThrough(t *testing.T) {
	client, mock := redismock.NewClientMock()
	m := NewRateLimitMiddleware(client, config.RateLimit{WindowMinutes: 10, MaxRequests: 120})
	router := newLimitedRouter(m)

	key := fmt.Sprintf("%s%s", constant.RateLimitKeyPrefix, "203.0.113.9")
	mock.ExpectIncr(key).SetVal(57)

	w := doRequest(router)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimit_OverLimitRejected(t *testing.T) {
	client, mock := redismock.NewClientMock()
	m := NewRateLimitMiddleware(client, config.RateLimit{WindowMinutes: 10, MaxRequests: 120})
	router := newLimitedRouter(m)

	key := fmt.Sprintf("%s%s", constant.RateLimitKeyPrefix, "203.0.113.9")
	mock.ExpectIncr(key).SetVal(121)

	w := doRequest(router)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimit_RedisDownFailsOpen(t *testing.T) {
	client, mock := redismock.NewClientMock()
	m := NewRateLimitMiddleware(client, config.RateLimit{WindowMinutes: 10, MaxRequests: 120})
	router := newLimitedRouter(m)

	key := fmt.Sprintf("%s%s", constant.RateLimitKeyPrefix, "203.0.113.9")
	mock.ExpectIncr(key).SetErr(errors.New("connection refused"))

	w := doRequest(router)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
