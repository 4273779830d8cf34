package http

import (
	"github.com/gin-gonic/gin"

	"clinic-assistant/internal/task"
	"clinic-assistant/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Complete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
