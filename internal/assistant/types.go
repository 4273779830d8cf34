package assistant

import "clinic-assistant/internal/model"

// DefaultSessionID is used when the client does not name a session.
const DefaultSessionID = "default"

// Action is a side effect the client should perform after a reply.
type Action string

const (
	ActionNewRecord   Action = "new_record"
	ActionViewRecords Action = "view_records"
	ActionViewTasks   Action = "view_tasks"
	ActionCreateTask  Action = "create_task"
)

// --- UseCase Inputs ---

// SendMessageInput is one chat message.
//
// Stats, when set, replaces the stored snapshot for this reply only.
// Suggestion marks the text as a tapped chip. DetectSuggestion asks the use
// case to treat the text as a chip when it equals one of the last AI suggestions.
type SendMessageInput struct {
	SessionID        string
	Text             string
	Stats            *model.Stats
	AssignedBy       *model.User
	CaptureTasks     bool
	Suggestion       bool
	DetectSuggestion bool
}

// --- UseCase Outputs ---

type SendMessageOutput struct {
	UserMessage model.Message
	Reply       model.Message
	TaskCreated bool
	Task        *model.Task
	Actions     []Action
	Intent      string
	// Greeting is set when this message opened a new session.
	Greeting *model.Message
}
