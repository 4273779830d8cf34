package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"clinic-assistant/pkg/response"
)

// TelegramSecretHeader carries the secret_token registered with setWebhook.
const TelegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// TelegramSecret rejects webhook calls whose secret header does not match.
// It is a no-op when no secret is configured.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.telegramSecret == "" {
			c.Next()
			return
		}
		got := c.GetHeader(TelegramSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.telegramSecret)) != 1 {
			m.l.Warnf(c.Request.Context(), "internal.middleware.TelegramSecret: invalid secret from %s", c.ClientIP())
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}
