package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// RateLimiter implements a simple in-memory sliding-window rate limiter keyed
// by client address.
type RateLimiter struct {
	requests  map[string][]time.Time
	mutex     sync.Mutex
	limit     int
	window    time.Duration
	lastSweep time.Time
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests:  make(map[string][]time.Time),
		limit:     limit,
		window:    window,
		lastSweep: time.Now(),
	}
}

// Allow checks if a request from the given key should be allowed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)
	rl.sweep(now, cutoff)

	var recent []time.Time
	for _, reqTime := range rl.requests[key] {
		if reqTime.After(cutoff) {
			recent = append(recent, reqTime)
		}
	}

	if len(recent) >= rl.limit {
		rl.requests[key] = recent
		return false
	}

	rl.requests[key] = append(recent, now)
	return true
}

// sweep evicts clients with no requests inside the window, so the map does
// not grow with every address ever seen. Runs at most once per window.
func (rl *RateLimiter) sweep(now, cutoff time.Time) {
	if now.Sub(rl.lastSweep) < rl.window {
		return
	}
	rl.lastSweep = now

	for key, times := range rl.requests {
		idle := true
		for _, reqTime := range times {
			if reqTime.After(cutoff) {
				idle = false
				break
			}
		}
		if idle {
			delete(rl.requests, key)
		}
	}
}

// RateLimit creates a per-client-IP rate limiting middleware.
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(limit, window)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		if !limiter.Allow(clientIP) {
			log.Warnf("rate limit exceeded for %s", clientIP)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": int(window.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
