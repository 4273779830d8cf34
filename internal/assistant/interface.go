package assistant

import (
	"context"

	"clinic-assistant/internal/model"
)

// UseCase is the chat assistant: it keeps per-session transcripts and answers
// each message through the keyword router.
type UseCase interface {
	SendMessage(ctx context.Context, sc model.Scope, input SendMessageInput) (SendMessageOutput, error)
	// ExpandSuggestion turns a chip label into the sentence the router understands.
	ExpandSuggestion(ctx context.Context, text string) string
	Transcript(ctx context.Context, sc model.Scope, sessionID string) ([]model.Message, error)
	ResetSession(ctx context.Context, sc model.Scope, sessionID string) error
	Greeting(ctx context.Context, role model.Role) model.Message

	// Stats returns the latest record counts pushed by the clinic front-end.
	Stats(ctx context.Context) model.Stats
	UpdateStats(ctx context.Context, sc model.Scope, stats model.Stats) (model.Stats, error)
}
