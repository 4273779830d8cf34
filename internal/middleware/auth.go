package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"clinic-assistant/internal/model"
	"clinic-assistant/pkg/response"
	"clinic-assistant/pkg/scope"
)

const (
	bearerPrefix = "bearer "
	scopeKey     = "scope"
)

// Auth requires a valid bearer token and stores the caller scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(header), bearerPrefix) {
			response.Unauthorized(c)
			return
		}
		token := strings.TrimSpace(header[len(bearerPrefix):])
		if token == "" {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(ctx, "internal.middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		sc := payload.Scope()
		c.Set(scopeKey, sc)
		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

// GetScope returns the caller scope set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	return scope.GetScopeFromContext(c.Request.Context())
}
