package http

import (
	"time"

	"clinic-assistant/internal/model"
	"clinic-assistant/internal/task"
)

// --- Request DTOs ---

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=pending completed"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Status: r.Status,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// --- Response DTOs ---

type personResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TaskResp struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Description       string      `json:"description,omitempty"`
	Priority          string      `json:"priority"`
	Category          string      `json:"category,omitempty"`
	Tags              []string    `json:"tags"`
	Type              string      `json:"type"`
	Status            string      `json:"status"`
	DueDate           string      `json:"due_date,omitempty"`
	DueTime           string      `json:"due_time,omitempty"`
	ReminderEnabled   bool        `json:"reminder_enabled"`
	ReminderDate      string      `json:"reminder_date,omitempty"`
	ReminderTime      string      `json:"reminder_time,omitempty"`
	EstimatedDuration int         `json:"estimated_duration,omitempty"`
	AssignedBy        *personResp `json:"assigned_by,omitempty"`
	AssignedTo        personResp  `json:"assigned_to"`
	CalendarLink      string      `json:"calendar_link,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
	CompletedAt       *time.Time  `json:"completed_at,omitempty"`
}

// NewTaskResp renders a task for JSON clients. The assistant delivery reuses it.
func NewTaskResp(t model.Task) TaskResp {
	resp := TaskResp{
		ID:                t.ID,
		Title:             t.Title,
		Description:       t.Description,
		Priority:          t.Priority,
		Category:          t.Category,
		Tags:              t.Tags,
		Type:              t.Type,
		Status:            string(t.Status),
		DueDate:           t.DueDate,
		DueTime:           t.DueTime,
		ReminderEnabled:   t.ReminderEnabled,
		ReminderDate:      t.ReminderDate,
		ReminderTime:      t.ReminderTime,
		EstimatedDuration: t.EstimatedDuration,
		AssignedTo:        personResp{ID: t.AssignedToID, Name: t.AssignedToName},
		CalendarLink:      t.CalendarLink,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
		CompletedAt:       t.CompletedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if t.AssignedByID != "" && t.AssignedByID != t.AssignedToID {
		resp.AssignedBy = &personResp{ID: t.AssignedByID, Name: t.AssignedByName}
	}
	return resp
}

type listResp struct {
	Tasks  []TaskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]TaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = NewTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task TaskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: NewTaskResp(out.Task)}
}
