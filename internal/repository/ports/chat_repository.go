package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/langhub/Language_Hub_BackEnd/internal/domain"
)

type ChatRepository interface {
	Create(ctx context.Context, userID uuid.UUID, title string) (*domain.Chat, error)
	// FindByID loads the chat together with its messages in creation order.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Chat, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ChatSummary, error)
	AppendMessage(ctx context.Context, chatID uuid.UUID, role domain.MessageRole, content string) (*domain.ChatMessage, error)
	// Delete removes the chat only when owned by userID; sql.ErrNoRows
	// otherwise.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
