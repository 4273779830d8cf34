package task

import (
	"clinic-assistant/internal/model"
	"clinic-assistant/pkg/taskparser"
)

// --- UseCase Inputs ---

// CreateInput carries a parsed task. AssignedTo overrides Parsed.AssignedTo;
// when both are empty the caller becomes the assignee.
type CreateInput struct {
	Parsed     taskparser.ParsedTask
	AssignedTo *model.User
}

type ListInput struct {
	Status string
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}
