package api

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimit allows perMinute requests per client IP, with bursts of the same
// size. Limiters of idle clients are dropped after ten minutes.
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) {}
	}

	logger := slog.Default().With("component", "api")
	limiters := cache.New(10*time.Minute, 20*time.Minute)

	var mu sync.Mutex

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		if l, found := limiters.Get(ip); found {
			limiters.SetDefault(ip, l)
			return l.(*rate.Limiter)
		}

		l := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
		limiters.SetDefault(ip, l)

		return l
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()

		if !limiterFor(ip).Allow() {
			logger.Warn("rate limit exceeded", "ip", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded, try again later"})
			return
		}
	}
}
