package taskparser

// Priority is the urgency level of a parsed task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Type tells whether the user wrote the task for themselves or received it.
type Type string

const (
	TypePersonal Type = "personal"
	TypeAssigned Type = "assigned"
)

// Person identifies who assigned or owns a task.
type Person struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// ParsedTask is a task extracted from a single chat message.
// Optional fields are left at their zero value when nothing matched.
type ParsedTask struct {
	Title             string   `json:"title"`
	Description       string   `json:"description,omitempty"`
	Priority          Priority `json:"priority"`
	DueDate           string   `json:"due_date,omitempty"` // YYYY-MM-DD
	DueTime           string   `json:"due_time,omitempty"` // HH:MM
	Category          string   `json:"category,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	Type              Type     `json:"type"`
	AssignedBy        *Person  `json:"assigned_by,omitempty"`
	AssignedTo        *Person  `json:"assigned_to,omitempty"`
	ReminderEnabled   bool     `json:"reminder_enabled"`
	ReminderTime      string   `json:"reminder_time,omitempty"` // HH:MM
	ReminderDate      string   `json:"reminder_date,omitempty"` // YYYY-MM-DD
	EstimatedDuration int      `json:"estimated_duration,omitempty"` // minutes
}
