package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"akshara/clinic-queue/internal/config"
	"akshara/clinic-queue/internal/constant"
)

// RateLimitMiddleware guards the public queue endpoint with a fixed window
// counter per client IP: INCR on every request, EXPIRE on the first one.
// Redis being down fails open; the public search is read-only.
type RateLimitMiddleware struct {
	redisClient *redis.Client
	window      time.Duration
	max         int
}

func NewRateLimitMiddleware(redisClient *redis.Client, cfg config.RateLimit) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redisClient: redisClient,
		window:      time.Duration(cfg.WindowMinutes) * time.Minute,
		max:         cfg.MaxRequests,
	}
}

func (m *RateLimitMiddleware) Handle(c *gin.Context) {
	key := fmt.Sprintf("%s%s", constant.RateLimitKeyPrefix, c.ClientIP())

	count, err := m.redisClient.Incr(c, key).Result()
	if err != nil {
		c.Next()
		return
	}

	if count == 1 {
		m.redisClient.Expire(c, key, m.window)
	}

	if count > int64(m.max) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"code": http.StatusTooManyRequests,
			"msg":  "too many requests",
		})
		return
	}

	c.Next()
}
