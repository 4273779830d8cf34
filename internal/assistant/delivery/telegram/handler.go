package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"clinic-assistant/internal/assistant"
	"clinic-assistant/internal/model"
	pkgResponse "clinic-assistant/pkg/response"
	pkgTelegram "clinic-assistant/pkg/telegram"
)

// HandleWebhook acknowledges the update right away and answers in the background,
// since Telegram retries webhooks that do not respond quickly.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "internal.assistant.delivery.telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil || update.Message.From == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "internal.assistant.delivery.telegram.processMessage: %v", err)
			_ = h.bot.SendMessage(bgCtx, pkgTelegram.SendMessageRequest{ChatID: msg.Chat.ID, Text: msgError})
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	sc := h.scope(msg.From)
	sessionID := strconv.FormatInt(msg.Chat.ID, 10)

	switch command(text) {
	case cmdStart:
		if err := h.uc.ResetSession(ctx, sc, sessionID); err != nil {
			return err
		}
		greeting := h.uc.Greeting(ctx, sc.Role)
		return h.reply(ctx, msg.Chat.ID, greeting.Content, greeting.Suggestions)
	case cmdHelp:
		return h.reply(ctx, msg.Chat.ID, msgHelp, h.uc.Greeting(ctx, sc.Role).Suggestions)
	case cmdReset:
		if err := h.uc.ResetSession(ctx, sc, sessionID); err != nil {
			return err
		}
		return h.reply(ctx, msg.Chat.ID, msgReset, h.uc.Greeting(ctx, sc.Role).Suggestions)
	}

	out, err := h.uc.SendMessage(ctx, sc, assistant.SendMessageInput{
		SessionID:        sessionID,
		Text:             text,
		CaptureTasks:     h.captureTasks,
		DetectSuggestion: true,
	})
	if err != nil {
		return fmt.Errorf("uc.SendMessage: %w", err)
	}

	content := out.Reply.Content
	if out.Task != nil && out.Task.CalendarLink != "" {
		content += "\n📅 " + out.Task.CalendarLink
	}
	return h.reply(ctx, msg.Chat.ID, content, out.Reply.Suggestions)
}

func (h *handler) reply(ctx context.Context, chatID int64, text string, chips []string) error {
	return h.bot.SendMessage(ctx, pkgTelegram.SendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: pkgTelegram.NewReplyKeyboard(chips, pkgTelegram.DefaultButtonsPerRow),
	})
}

func (h *handler) scope(from *pkgTelegram.User) model.Scope {
	name := from.Username
	if name == "" {
		name = strings.TrimSpace(from.FirstName + " " + from.LastName)
	}
	return model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", from.ID),
		Username: name,
		Role:     h.role,
	}
}

// command returns the bot command in text, dropping any "@botname" suffix.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(strings.Fields(text)[0], "@")
	return strings.ToLower(cmd)
}
