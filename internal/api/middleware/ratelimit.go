package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sungminna/exchange-credentials/pkg/ratelimit"
)

// RateLimit rejects clients that exceed their per-IP request budget
func RateLimit(limiter *ratelimit.ClientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
