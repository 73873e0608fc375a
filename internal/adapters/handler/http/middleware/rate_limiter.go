package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const rateLimitPrefix = "rate_limit:"

// RateLimiter counts requests per client IP in fixed windows held in Redis.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	log    *zap.Logger
}

type quota struct {
	used int64
	ttl  time.Duration
}

func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration, logger *zap.Logger) *RateLimiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		log:    logger.Named("ratelimit"),
	}
}

// take records one request for client and reports the window's usage.
func (l *RateLimiter) take(ctx context.Context, client string) (quota, error) {
	key := rateLimitPrefix + client

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return quota{}, err
	}

	q := quota{used: incr.Val(), ttl: ttl.Val()}
	if q.ttl < 0 {
		// new window, or the expiry of an earlier one was never set
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			l.rdb.Del(ctx, key)
			return quota{}, err
		}
		q.ttl = l.window
	}
	return q, nil
}

func (l *RateLimiter) remaining(q quota) int64 {
	return max(0, int64(l.limit)-q.used)
}

// Middleware fails open: a Redis error lets the request through.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		client := c.ClientIP()

		q, err := l.take(c.Request.Context(), client)
		if err != nil {
			l.log.Warn("redis error, rate limiter skipped", zap.String("client_ip", client), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(l.remaining(q), 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(q.ttl).Unix(), 10))

		if q.used > int64(l.limit) {
			retry := int(q.ttl.Round(time.Second).Seconds())
			l.log.Debug("request throttled", zap.String("client_ip", client), zap.Int64("used", q.used))
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":     "error",
				"message":    "Too many requests. Slow down!",
				"retry_in_s": retry,
			})
			return
		}

		c.Next()
	}
}

func RateLimiterMiddleware(rdb *redis.Client, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return NewRateLimiter(rdb, limit, window, logger).Middleware()
}
