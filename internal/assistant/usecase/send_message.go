package usecase

import (
	"context"
	"slices"
	"strings"

	"clinic-assistant/internal/assistant"
	"clinic-assistant/internal/model"
	"clinic-assistant/internal/router"
	"clinic-assistant/internal/task"
	"clinic-assistant/pkg/suggestion"
	"clinic-assistant/pkg/taskparser"
)

// SendMessage appends the user message and the assistant reply to the session transcript.
func (uc *implUseCase) SendMessage(ctx context.Context, sc model.Scope, input assistant.SendMessageInput) (assistant.SendMessageOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.SendMessageOutput{}, assistant.ErrEmptyText
	}
	if sc.UserID == "" {
		return assistant.SendMessageOutput{}, assistant.ErrNoUser
	}

	key := sessionKey(sc, input.SessionID)

	var out assistant.SendMessageOutput
	if uc.transcripts.Len(key) == 0 {
		greeting := uc.transcripts.Append(key, uc.Greeting(ctx, sc.Role))
		out.Greeting = &greeting
	}

	if input.Suggestion || (input.DetectSuggestion && uc.isChipTap(key, text)) {
		text = suggestion.Map(text)
	}

	out.UserMessage = uc.transcripts.Append(key, model.Message{Type: model.MessageTypeUser, Content: text})

	current := uc.stats.Get()
	if input.Stats != nil {
		current = *input.Stats
	}

	user := sc.User()
	callbacks := router.Callbacks{
		OnNewRecord:   func(context.Context) { out.Actions = append(out.Actions, assistant.ActionNewRecord) },
		OnViewRecords: func(context.Context) { out.Actions = append(out.Actions, assistant.ActionViewRecords) },
		OnViewTasks:   func(context.Context) { out.Actions = append(out.Actions, assistant.ActionViewTasks) },
	}
	if input.CaptureTasks && uc.tasks != nil {
		callbacks.OnCreateTask = func(ctx context.Context, parsed taskparser.ParsedTask) error {
			created, err := uc.tasks.Create(ctx, sc, task.CreateInput{Parsed: parsed, AssignedTo: &user})
			if err != nil {
				return err
			}
			out.Task = &created.Task
			out.Actions = append(out.Actions, assistant.ActionCreateTask)
			return nil
		}
	}

	reply := uc.router.Route(ctx, router.Input{
		Text:        text,
		Role:        sc.Role,
		CurrentUser: &user,
		AssignedBy:  input.AssignedBy,
		Stats:       current,
		Callbacks:   callbacks,
	})

	out.Reply = uc.transcripts.Append(key, model.Message{
		Type:        model.MessageTypeAI,
		Content:     reply.Content,
		Suggestions: reply.Suggestions,
	})
	out.TaskCreated = reply.TaskCreated
	out.Intent = string(reply.Intent)
	if !out.TaskCreated {
		out.Task = nil
	}

	uc.l.Debugf(ctx, "internal.assistant.usecase.SendMessage: user=%s role=%s intent=%s", sc.UserID, sc.Role, out.Intent)
	return out, nil
}

// ExpandSuggestion turns a chip label into a full request sentence.
func (uc *implUseCase) ExpandSuggestion(ctx context.Context, text string) string {
	return suggestion.Map(text)
}

// isChipTap accepts the last offered chips and any built-in label, since a
// Telegram client can still show an older keyboard.
func (uc *implUseCase) isChipTap(key, text string) bool {
	if suggestion.Known(text) {
		return true
	}
	last, ok := uc.transcripts.Last(key, model.MessageTypeAI)
	if !ok {
		return false
	}
	return slices.Contains(last.Suggestions, text)
}

// sessionKey scopes session IDs to their owner.
func sessionKey(sc model.Scope, sessionID string) string {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = assistant.DefaultSessionID
	}
	return sc.UserID + ":" + sessionID
}
