package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// rateLimiter tracks request timestamps per client IP over a sliding window.
type rateLimiter struct {
	requests map[string][]time.Time
	mu       sync.Mutex
	window   time.Duration
	maxReqs  int
}

func (r *rateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()

	if reqs, exists := r.requests[ip]; exists {
		var valid []time.Time
		for _, t := range reqs {
			if now.Sub(t) < r.window {
				valid = append(valid, t)
			}
		}
		r.requests[ip] = valid
	}

	if len(r.requests[ip]) >= r.maxReqs {
		return false
	}

	r.requests[ip] = append(r.requests[ip], now)
	return true
}

// RateLimit caps requests per client IP within the window. Each call owns an
// independent limiter, so every route group gets its own budget.
func RateLimit(maxReqs int, window time.Duration) gin.HandlerFunc {
	limiter := &rateLimiter{
		requests: make(map[string][]time.Time),
		window:   window,
		maxReqs:  maxReqs,
	}

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
