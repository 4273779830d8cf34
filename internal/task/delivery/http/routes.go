package http

import (
	"github.com/gin-gonic/gin"

	"clinic-assistant/internal/middleware"
)

// RegisterRoutes maps the task endpoints. All of them require authentication.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth(), mw.RateLimit())
	{
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.POST("/:id/complete", h.Complete)
	}
}
