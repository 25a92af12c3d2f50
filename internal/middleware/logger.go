package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func LoggerMiddleware(zapLogger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if board := c.Param("board"); board != "" {
			fields = append(fields, zap.String("board", board))
		}

		switch {
		case c.Writer.Status() >= 500:
			zapLogger.Error("HTTP request", fields...)
		case c.Writer.Status() >= 400:
			zapLogger.Warn("HTTP request", fields...)
		default:
			zapLogger.Info("HTTP request", fields...)
		}
	}
}
