package ratelimit

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// KeyFunc extracts the client key a request is throttled under.
type KeyFunc func(c *gin.Context) string

type Options struct {
	Store               *Store
	KeyFn               KeyFunc
	RetryAfter          time.Duration
	AddRateLimitHeaders bool
}

// ClientIPKey keys requests by gin's resolved client IP.
func ClientIPKey(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

// Middleware rejects requests from clients whose bucket is empty.
func Middleware(opts Options) gin.HandlerFunc {
	if opts.RetryAfter <= 0 {
		opts.RetryAfter = time.Second
	}
	if opts.KeyFn == nil {
		opts.KeyFn = ClientIPKey
	}
	// Retry-After is whole seconds; round up so clients never retry early.
	retryAfter := strconv.Itoa(max(1, int(math.Ceil(opts.RetryAfter.Seconds()))))

	return func(c *gin.Context) {
		key := opts.KeyFn(c)

		if opts.AddRateLimitHeaders {
			c.Header("X-RateLimit-RPS", strconv.FormatFloat(opts.Store.RPS(), 'f', -1, 64))
			c.Header("X-RateLimit-Burst", strconv.Itoa(opts.Store.Burst()))
		}

		if !opts.Store.Limiter(key).Allow() {
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}

		c.Next()
	}
}
