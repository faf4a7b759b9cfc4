package middleware

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// 클라이언트 IP별 limiter 유지 시간
const limiterTTL = time.Hour

// gin-limit-by-key keeps every limiter in one process-wide cache, so each
// RateLimit instance prefixes its keys with its own id.
var limiterSeq atomic.Uint64

// RateLimit applies a per-client-IP token bucket. rps <= 0 or burst <= 0
// disables limiting.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 || burst <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	prefix := strconv.FormatUint(limiterSeq.Add(1), 10) + "|"
	return limit.NewRateLimiter(
		func(c *gin.Context) string {
			return prefix + c.ClientIP()
		},
		func(c *gin.Context) (*rate.Limiter, time.Duration) {
			return rate.NewLimiter(rate.Limit(rps), burst), limiterTTL
		},
		func(c *gin.Context) {
			Logger(c).Warn().Str("client_ip", c.ClientIP()).Msg("rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
		},
	)
}
