package telegram

import (
	"github.com/gin-gonic/gin"

	"clinic-assistant/internal/assistant"
	"clinic-assistant/internal/model"
	pkgLog "clinic-assistant/pkg/log"
	pkgTelegram "clinic-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Config controls how Telegram chats map onto assistant sessions.
type Config struct {
	// Role every Telegram user talks as.
	Role         model.Role
	CaptureTasks bool
}

type handler struct {
	l            pkgLog.Logger
	uc           assistant.UseCase
	bot          pkgTelegram.Sender
	role         model.Role
	captureTasks bool
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc assistant.UseCase, bot pkgTelegram.Sender, cfg Config) Handler {
	return &handler{
		l:            l,
		uc:           uc,
		bot:          bot,
		role:         cfg.Role,
		captureTasks: cfg.CaptureTasks,
	}
}
