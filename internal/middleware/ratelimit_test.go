package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))

	// Other clients are counted independently.
	assert.True(t, limiter.Allow("5.6.7.8"))
}

func TestRateLimiter_WindowExpiry(t *testing.T) {
	limiter := NewRateLimiter(1, 10*time.Millisecond)

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, limiter.Allow("1.2.3.4"))
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	limiter := NewRateLimiter(5, 10*time.Millisecond)

	assert.True(t, limiter.Allow("1.2.3.4"))

	// Once the window has fully passed, the next request from anyone sweeps
	// the idle entry away.
	time.Sleep(25 * time.Millisecond)
	assert.True(t, limiter.Allow("5.6.7.8"))

	limiter.mutex.Lock()
	_, exists := limiter.requests["1.2.3.4"]
	limiter.mutex.Unlock()
	assert.False(t, exists)
}

func TestRateLimit_Returns429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/limited", RateLimit(2, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := []int{}
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/limited", nil)
		req.RemoteAddr = "1.2.3.4:1000"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
