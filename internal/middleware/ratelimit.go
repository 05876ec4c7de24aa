package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/abhi78nath/universal-app-opener/internal/config"
)

// RateLimiter 限流器
type RateLimiter struct {
	globalLimiter *rate.Limiter
	ipLimiters    sync.Map
	ipRPS         rate.Limit
	ipBurst       int
}

// NewRateLimiter 创建限流器
func NewRateLimiter(cfg *config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		globalLimiter: rate.NewLimiter(rate.Limit(cfg.GlobalRPS), cfg.Burst*2),
		ipRPS:         rate.Limit(cfg.IPRPS),
		ipBurst:       cfg.Burst,
	}
}

// getIPLimiter 获取IP限流器
func (rl *RateLimiter) getIPLimiter(clientIP string) *rate.Limiter {
	if limiter, ok := rl.ipLimiters.Load(clientIP); ok {
		return limiter.(*rate.Limiter)
	}

	// 创建新的限流器
	limiter := rate.NewLimiter(rl.ipRPS, rl.ipBurst)
	rl.ipLimiters.Store(clientIP, limiter)
	return limiter
}

// IPRateLimit IP 限流中间件
func IPRateLimit(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 全局限流
		if !rl.globalLimiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    429,
				"message": "global rate limit exceeded, please try again later",
			})
			c.Abort()
			return
		}

		// IP 限流
		if !rl.getIPLimiter(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    429,
				"message": "ip rate limit exceeded, please try again later",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
