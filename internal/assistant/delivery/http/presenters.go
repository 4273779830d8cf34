package http

import (
	"clinic-assistant/internal/assistant"
	"clinic-assistant/internal/model"
	taskHTTP "clinic-assistant/internal/task/delivery/http"
)

// --- Request DTOs ---

type statsReq struct {
	TotalRecords       int `json:"total_records"`
	PendingExamination int `json:"pending_examination"`
	InProgress         int `json:"in_progress"`
	Completed          int `json:"completed"`
	Returned           int `json:"returned"`
}

func (r statsReq) toModel() model.Stats {
	return model.Stats{
		TotalRecords:       r.TotalRecords,
		PendingExamination: r.PendingExamination,
		InProgress:         r.InProgress,
		Completed:          r.Completed,
		Returned:           r.Returned,
	}
}

type sendMessageReq struct {
	SessionID    string      `json:"session_id"`
	Text         string      `json:"text" binding:"required"`
	Suggestion   bool        `json:"suggestion"`
	CaptureTasks *bool       `json:"capture_tasks"`
	Stats        *statsReq   `json:"stats"`
	AssignedBy   *model.User `json:"assigned_by"`
}

func (r sendMessageReq) toInput(defaultCapture bool) assistant.SendMessageInput {
	in := assistant.SendMessageInput{
		SessionID:    r.SessionID,
		Text:         r.Text,
		Suggestion:   r.Suggestion,
		CaptureTasks: defaultCapture,
		AssignedBy:   r.AssignedBy,
	}
	if r.CaptureTasks != nil {
		in.CaptureTasks = *r.CaptureTasks
	}
	if r.Stats != nil {
		s := r.Stats.toModel()
		in.Stats = &s
	}
	return in
}

type suggestionReq struct {
	Text string `json:"text" binding:"required"`
}

// --- Response DTOs ---

type sendMessageResp struct {
	Greeting    *model.Message     `json:"greeting,omitempty"`
	UserMessage model.Message      `json:"user_message"`
	Reply       model.Message      `json:"reply"`
	TaskCreated bool               `json:"task_created"`
	Task        *taskHTTP.TaskResp `json:"task,omitempty"`
	Actions     []assistant.Action `json:"actions"`
	Intent      string             `json:"intent"`
}

func (h *handler) newSendMessageResp(out assistant.SendMessageOutput) sendMessageResp {
	resp := sendMessageResp{
		Greeting:    out.Greeting,
		UserMessage: out.UserMessage,
		Reply:       out.Reply,
		TaskCreated: out.TaskCreated,
		Actions:     out.Actions,
		Intent:      out.Intent,
	}
	if resp.Actions == nil {
		resp.Actions = []assistant.Action{}
	}
	if out.Task != nil {
		t := taskHTTP.NewTaskResp(*out.Task)
		resp.Task = &t
	}
	return resp
}

type suggestionResp struct {
	Text string `json:"text"`
}

type transcriptResp struct {
	Messages []model.Message `json:"messages"`
}

type greetingResp struct {
	Message model.Message `json:"message"`
}
