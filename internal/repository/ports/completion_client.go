package ports

import (
	"context"

	"github.com/langhub/Language_Hub_BackEnd/internal/domain"
)

// CompletionClient relays a conversation to the external language model and
// returns the assistant's reply. It must never receive or log credentials.
type CompletionClient interface {
	Complete(ctx context.Context, messages []domain.ChatMessage) (string, error)
}
