package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Lixetron/job-portal/internal/logger"
)

// RateLimitMiddleware is a fixed-window per-IP limiter backed by redis.
// A nil client disables it; redis errors fail open so auth keeps working
// when redis is down.
func RateLimitMiddleware(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), time.Now().Unix()/int64(window.Seconds()))

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.CtxWarn(ctx, "rate limiter unavailable, failing open", "error", err.Error())
			c.Next()
			return
		}
		if count == 1 {
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				logger.CtxWarn(ctx, "rate limiter expire failed", "key", key, "error", err.Error())
			}
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}

		c.Next()
	}
}
