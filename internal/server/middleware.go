package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spandanakunder/portfolio/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// requestID tags every request with an id, reusing a valid incoming one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// observe logs each request and records it in the HTTP metrics.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		s.metrics.ObserveRequest(c.Request.Method, route, status, elapsed)

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Any("duration", elapsed),
			logger.String("request_id", c.GetString("request_id")),
		}
		if status >= 500 {
			s.log.Error(c.Request.Context(), "request", fields...)
			return
		}
		s.log.Debug(c.Request.Context(), "request", fields...)
	}
}
