package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ---------------------------

// RequestIdMiddleware tags every request with a fresh uuid so log lines can
// be correlated.
func RequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := uuid.New().String()
		c.Set("requestId", requestId)
		c.Header("X-Request-Id", requestId)
		c.Next()
	}
}

// ---------------------------
// Zerolog based middleware for logging HTTP requests
func ZerologLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// ---------------------------
		// Start timer
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery
		// ---------------------------
		// Process request
		c.Next()
		// ---------------------------
		// Stop timer and gather information
		timeStamp := time.Now()
		latency := timeStamp.Sub(start)

		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()

		bodySize := c.Writer.Size()

		if raw != "" {
			path = path + "?" + raw
		}
		// ---------------------------
		logEvent := log.Info().Time("timeStamp", timeStamp).
			Dur("latency", latency).
			Str("clientIP", clientIP).
			Str("method", method).Str("path", path).
			Int("statusCode", statusCode).
			Str("errorMessage", errorMessage).
			Int("bodySize", bodySize)
		if requestId, ok := c.Keys["requestId"]; ok {
			logEvent = logEvent.Str("requestId", requestId.(string))
		}
		logEvent.Msg("HTTPAPI")
	}
}
