package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterConfigForLimit(t *testing.T) {
	cfg := RateLimiterConfigForLimit(100, 60)

	assert.InDelta(t, 100.0/60.0, cfg.RequestsPerSecond, 0.001)
	assert.Equal(t, 100, cfg.BurstSize)
	assert.Equal(t, 5*time.Minute, cfg.CleanupInterval)
}

func TestRateLimiterConfigForLimit_InvalidFallsBackToDefaults(t *testing.T) {
	defaults := DefaultRateLimiterConfig()

	assert.Equal(t, defaults, RateLimiterConfigForLimit(0, 60))
	assert.Equal(t, defaults, RateLimiterConfigForLimit(100, 0))
	assert.Equal(t, defaults, RateLimiterConfigForLimit(-1, -1))
}

func TestClientRateLimiter_EnforcesConfiguredBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// 2 requests per hour: the burst is exhausted on the second request and
	// refill is too slow to matter within the test.
	rl := NewClientRateLimiter(RateLimiterConfigForLimit(2, 3600))

	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}
