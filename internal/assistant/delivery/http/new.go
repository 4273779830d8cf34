package http

import (
	"github.com/gin-gonic/gin"

	"clinic-assistant/internal/assistant"
	"clinic-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	SendMessage(c *gin.Context)
	ExpandSuggestion(c *gin.Context)
	Transcript(c *gin.Context)
	ResetSession(c *gin.Context)
	Greeting(c *gin.Context)
	GetStats(c *gin.Context)
	UpdateStats(c *gin.Context)
}

type handler struct {
	l            log.Logger
	uc           assistant.UseCase
	captureTasks bool
}

// New creates the assistant HTTP handler. captureTasks is the default for
// requests that do not set capture_tasks.
func New(l log.Logger, uc assistant.UseCase, captureTasks bool) Handler {
	return &handler{
		l:            l,
		uc:           uc,
		captureTasks: captureTasks,
	}
}
