package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"tripwise/pkg/utils"
)

// OwnerRateLimiter hands out one token bucket per owner id.
type OwnerRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewOwnerRateLimiter allows perMinute requests per owner per minute, all of
// which may be spent at once.
func NewOwnerRateLimiter(perMinute int) *OwnerRateLimiter {
	return &OwnerRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}
}

func (s *OwnerRateLimiter) getLimiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.limiters[key] = limiter
	}
	return limiter
}

// Middleware limits by owner id, falling back to client IP on public routes.
func (s *OwnerRateLimiter) Middleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := OwnerID(c)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}
		if !s.getLimiter(key).Allow() {
			logger.Warn("rate limit exceeded", zap.String("key", key))
			utils.RespondError(c, http.StatusTooManyRequests, "Rate limit exceeded. Try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
