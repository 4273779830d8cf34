package usecase

import (
	"context"

	"clinic-assistant/internal/assistant"
	"clinic-assistant/internal/model"
)

// Transcript returns the session messages in order. An unknown session is empty.
func (uc *implUseCase) Transcript(ctx context.Context, sc model.Scope, sessionID string) ([]model.Message, error) {
	if sc.UserID == "" {
		return nil, assistant.ErrNoUser
	}
	return uc.transcripts.List(sessionKey(sc, sessionID)), nil
}

// ResetSession drops the transcript so the next message starts with a greeting.
func (uc *implUseCase) ResetSession(ctx context.Context, sc model.Scope, sessionID string) error {
	if sc.UserID == "" {
		return assistant.ErrNoUser
	}
	uc.transcripts.Reset(sessionKey(sc, sessionID))
	uc.l.Infof(ctx, "internal.assistant.usecase.ResetSession: user=%s session=%s", sc.UserID, sessionID)
	return nil
}
