package model

import "time"

// TaskStatus is the lifecycle state of a persisted task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Task is a task captured from chat and stored for its assignee.
type Task struct {
	ID                string
	Title             string
	Description       string
	Priority          string
	Category          string
	Tags              []string
	Type              string
	Status            TaskStatus
	DueDate           string // YYYY-MM-DD
	DueTime           string // HH:MM
	ReminderEnabled   bool
	ReminderDate      string
	ReminderTime      string
	EstimatedDuration int // minutes
	AssignedByID      string
	AssignedByName    string
	AssignedToID      string
	AssignedToName    string
	CalendarEventID   string
	CalendarLink      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	CompletedAt       *time.Time
}
