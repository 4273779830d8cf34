package model

// Stats is a snapshot of record counts owned by the clinic front-end.
type Stats struct {
	TotalRecords       int `json:"total_records"`
	PendingExamination int `json:"pending_examination"`
	InProgress         int `json:"in_progress"`
	Completed          int `json:"completed"`
	Returned           int `json:"returned"`
}
