package httpserver

import (
	"net/http"
	"strings"
	"time"

	"beauty-storefront/internal/appstate"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	sessionHeader = "X-Session-ID"
	stateCtxKey   = "appstate"
	sessionCtxKey = "sessionID"
)

// requestLogger writes one line per request, at warn for 4xx and error for 5xx.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.Int("bytes", c.Writer.Size()),
			zap.String("remote_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("request completed", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("request completed", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}

// recovery turns panics into a JSON 500 and logs the value.
func recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, rec any) {
		logger.Error("panic recovered", zap.Any("panic", rec), zap.String("route", c.FullPath()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}

// sessionMiddleware resolves the X-Session-ID header to the session's state.
func sessionMiddleware(sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(sessionHeader))
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + sessionHeader + " header"})
			return
		}
		state, err := sessions.Lookup(id)
		if err != nil {
			writeError(c, err)
			c.Abort()
			return
		}
		c.Set(sessionCtxKey, id)
		c.Set(stateCtxKey, state)
		c.Next()
	}
}

func stateFrom(c *gin.Context) *appstate.AppState {
	return c.MustGet(stateCtxKey).(*appstate.AppState)
}
