package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"nearmarket/services/market/handler"
	"nearmarket/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// TokenVerifier validates a bearer token and returns the subject user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the authenticated user id on the context. Websocket routes may also pass
// the token as a `token` query parameter since browser clients cannot set
// headers on websocket upgrades.
func AuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			utils.JSONError(c, http.StatusUnauthorized, errors.New("missing bearer token"), "missing bearer token")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(raw)
		if err != nil {
			utils.Warn("rejected request with invalid token", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("invalid or expired token: %w", err), "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(handler.ContextUserID, userID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return c.Query("token")
}
