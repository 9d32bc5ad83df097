package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware creates request logging middleware for Echo
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Start timer
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			// Process request
			err := next(c)

			// Calculate metrics
			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			// Format URL
			if raw != "" {
				path = path + "?" + raw
			}

			// Get request ID
			requestID := c.Response().Header().Get("X-Request-ID")

			fields := []Field{
				String("method", method),
				String("path", path),
				String("client_ip", clientIP),
				String("request_id", requestID),
				Int("status", statusCode),
				Duration("latency", latency),
			}
			if err != nil {
				fields = append(fields, Err(err))
			}

			switch {
			case statusCode >= 500:
				logger.Error("Server error", fields...)
			case statusCode >= 400:
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request processed", fields...)
			}

			return err
		}
	}
}
