package model

import "time"

// MessageType tells who authored a transcript message.
type MessageType string

const (
	MessageTypeAI   MessageType = "ai"
	MessageTypeUser MessageType = "user"
)

// Message is one immutable entry of a chat transcript.
type Message struct {
	ID          string      `json:"id"`
	Type        MessageType `json:"type"`
	Content     string      `json:"content"`
	Timestamp   time.Time   `json:"timestamp"`
	Suggestions []string    `json:"suggestions,omitempty"`
}
