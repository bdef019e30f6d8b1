// File: internal/middleware/logger.go
package middleware

import (
	"time"

	"revert_connect_backend/internal/common"
	"revert_connect_backend/internal/gate"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// RequestIDHeader is the header name for request ID
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey is the key for storing request ID in Gin context
	RequestIDContextKey = "requestID"
	// gateDecisionContextKey holds the gate.Decision ProfileGate made for the request.
	gateDecisionContextKey = "gateDecision"
)

// ZapLogger tags every request with an ID, hands handlers a request-scoped logger
// under common.LoggerContextKey and writes one access line per request. The line
// carries who asked (session kind, user) and what the access gate decided.
func ZapLogger(logger *zap.Logger, releaseMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)
		c.Set(RequestIDContextKey, requestID)
		c.Set(common.LoggerContextKey, logger.With(zap.String("request_id", requestID)))

		c.Next()

		status := c.Writer.Status()
		fields := append(requestFields(c, requestID, time.Since(start)), sessionFields(c)...)
		for _, e := range c.Errors.ByType(gin.ErrorTypePrivate) {
			fields = append(fields, zap.NamedError("error", e.Err))
		}

		switch {
		case status >= 500:
			logger.Error("Server error", fields...)
		case status >= 400 && releaseMode:
			logger.Warn("Client error", fields...)
		default:
			logger.Info("Request handled", fields...)
		}
	}
}

func requestFields(c *gin.Context, requestID string, latency time.Duration) []zapcore.Field {
	return []zapcore.Field{
		zap.String("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("query", c.Request.URL.RawQuery),
		zap.Int("status_code", c.Writer.Status()),
		zap.Duration("latency", latency),
		zap.String("ip", c.ClientIP()),
	}
}

// sessionFields describes the caller and, on gated screens, the gate outcome.
func sessionFields(c *gin.Context) []zapcore.Field {
	s := gate.SessionFrom(c)
	fields := []zapcore.Field{zap.String("session", string(s.Kind))}
	if s.Kind == gate.SessionAuthenticated && s.User != nil {
		fields = append(fields, zap.String("user_id", s.User.ID.String()))
	}
	if v, ok := c.Get(gateDecisionContextKey); ok {
		if d, ok := v.(gate.Decision); ok {
			fields = append(fields, zap.String("gate", string(d.Outcome)), zap.String("gate_target", string(d.Target)))
		}
	}
	return fields
}
