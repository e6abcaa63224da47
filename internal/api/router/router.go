package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sungminna/exchange-credentials/internal/api/handler"
	"github.com/sungminna/exchange-credentials/internal/api/middleware"
	"github.com/sungminna/exchange-credentials/internal/service/credential"
	"github.com/sungminna/exchange-credentials/pkg/ratelimit"
)

const healthTimeout = 2 * time.Second

// Config holds router configuration
type Config struct {
	Repository *credential.Repository
	// Limiter is optional; nil disables rate limiting
	Limiter *ratelimit.ClientLimiter
}

// Setup sets up the Gin router
func Setup(cfg *Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := cfg.Repository.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/")
	if cfg.Limiter != nil {
		api.Use(middleware.RateLimit(cfg.Limiter))
	}
	{
		accountHandler := handler.NewAccountHandler(cfg.Repository)
		api.POST("/account", accountHandler.CreateAccount)
		api.PUT("/account", accountHandler.SignAndGetKey)
		api.PATCH("/account", accountHandler.UpdateAccount)
		api.DELETE("/account/:uid", accountHandler.RemoveAccount)

		api.PUT("/key/account", accountHandler.GetAPIKey)
		api.DELETE("/key/account/:uid", accountHandler.RemoveKey)
	}

	return r
}
