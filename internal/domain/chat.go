package domain

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

type Chat struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	UserID    uuid.UUID     `db:"user_id" json:"user"`
	Title     string        `db:"title" json:"title"`
	Messages  []ChatMessage `db:"-" json:"messages"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
}

type ChatMessage struct {
	ID        int64       `db:"id" json:"-"`
	ChatID    uuid.UUID   `db:"chat_id" json:"-"`
	Role      MessageRole `db:"role" json:"role"`
	Content   string      `db:"content" json:"content"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
}

// ChatSummary is the list-view projection of a chat.
type ChatSummary struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
