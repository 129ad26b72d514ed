// Package domain defines the core domain models for the chat service.
package domain

import (
	"time"
)

// Role identifies which side of the conversation produced a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn half in a user's conversation. Messages are immutable
// once created: the store exposes no update or delete operation.
type Message struct {
	MessageID string    `json:"message_id"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
