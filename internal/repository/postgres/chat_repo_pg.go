package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/langhub/Language_Hub_BackEnd/internal/domain"
)

type ChatRepository struct {
	db *sqlx.DB
}

func NewChatRepo(db *sqlx.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Create(ctx context.Context, userID uuid.UUID, title string) (*domain.Chat, error) {
	const query = `
        INSERT INTO chat (user_id, title)
        VALUES ($1, $2)
        RETURNING id, user_id, title, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, userID, title)
	var chat domain.Chat
	if err := row.StructScan(&chat); err != nil {
		return nil, err
	}
	chat.Messages = []domain.ChatMessage{}
	return &chat, nil
}

func (r *ChatRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Chat, error) {
	const chatQuery = `
        SELECT id, user_id, title, created_at
        FROM chat
        WHERE id = $1
    `
	var chat domain.Chat
	if err := r.db.GetContext(ctx, &chat, chatQuery, id); err != nil {
		return nil, err
	}

	const messagesQuery = `
        SELECT id, chat_id, role, content, created_at
        FROM chat_message
        WHERE chat_id = $1
        ORDER BY id
    `
	messages := []domain.ChatMessage{}
	if err := r.db.SelectContext(ctx, &messages, messagesQuery, id); err != nil {
		return nil, err
	}
	chat.Messages = messages
	return &chat, nil
}

func (r *ChatRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ChatSummary, error) {
	const query = `
        SELECT id, title, created_at
        FROM chat
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	summaries := []domain.ChatSummary{}
	if err := r.db.SelectContext(ctx, &summaries, query, userID); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *ChatRepository) AppendMessage(ctx context.Context, chatID uuid.UUID, role domain.MessageRole, content string) (*domain.ChatMessage, error) {
	const query = `
        INSERT INTO chat_message (chat_id, role, content)
        VALUES ($1, $2, $3)
        RETURNING id, chat_id, role, content, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, chatID, role, content)
	var message domain.ChatMessage
	if err := row.StructScan(&message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *ChatRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	const query = `DELETE FROM chat WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
