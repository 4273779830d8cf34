package http

import (
	"github.com/gin-gonic/gin"

	"clinic-assistant/internal/middleware"
)

// RegisterRoutes maps the assistant and statistics endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	a := rg.Group("/assistant", mw.Auth(), mw.RateLimit())
	{
		a.POST("/messages", h.SendMessage)
		a.POST("/suggestions", h.ExpandSuggestion)
		a.GET("/sessions/:id/messages", h.Transcript)
		a.DELETE("/sessions/:id", h.ResetSession)
		a.GET("/greeting", h.Greeting)
	}

	s := rg.Group("/stats", mw.Auth(), mw.RateLimit())
	{
		s.GET("", h.GetStats)
		s.PUT("", h.UpdateStats)
	}
}
