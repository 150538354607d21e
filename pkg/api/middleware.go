package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quantgrad/greeks-engine/pkg/metrics"
	"github.com/quantgrad/greeks-engine/pkg/utils/logger"
	"github.com/quantgrad/greeks-engine/pkg/utils/ratelimit"
)

// LoggingMiddleware logs request information
func LoggingMiddleware() gin.HandlerFunc {
	log := logger.GetLogger("api.middleware")

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		log.Infof("%s %s [%d] %v", method, path, c.Writer.Status(), latency)
	}
}

// MetricsMiddleware captures API metrics
func MetricsMiddleware(recorder *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		c.Next()

		recorder.RecordAPIRequest(method, path,
			fmt.Sprintf("%d", c.Writer.Status()), time.Since(start))
	}
}

// RecoveryMiddleware converts panics into 500 responses
func RecoveryMiddleware() gin.HandlerFunc {
	log := logger.GetLogger("api.recovery")

	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("panic recovered: %v", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
			}
		}()
		c.Next()
	}
}

// RateLimitMiddleware rejects requests beyond the configured rate
func RateLimitMiddleware(limiter *ratelimit.TokenBucket) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
