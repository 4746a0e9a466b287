package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/langhub/Language_Hub_BackEnd/internal/domain"
	"github.com/langhub/Language_Hub_BackEnd/internal/repository/ports"
)

var ErrChatNotFound = errors.New("chat not found")

const (
	newChatTitle = "New Chat"
	maxReplyLen  = 3 // sentences kept from the model's reply
)

type ChatService struct {
	chats       ports.ChatRepository
	completions ports.CompletionClient
}

func NewChatService(chats ports.ChatRepository, completions ports.CompletionClient) *ChatService {
	return &ChatService{chats: chats, completions: completions}
}

func (s *ChatService) CreateChat(ctx context.Context, userID uuid.UUID) (*domain.Chat, error) {
	return s.chats.Create(ctx, userID, newChatTitle)
}

// SendMessage appends the user's message, relays the full conversation to
// the completion provider, trims the reply and records it as the assistant
// turn. Returns the trimmed reply together with the updated chat.
func (s *ChatService) SendMessage(ctx context.Context, chatID uuid.UUID, content string) (string, *domain.Chat, error) {
	chat, err := s.chats.FindByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, ErrChatNotFound
		}
		return "", nil, err
	}

	userMessage, err := s.chats.AppendMessage(ctx, chat.ID, domain.MessageRoleUser, content)
	if err != nil {
		return "", nil, err
	}
	chat.Messages = append(chat.Messages, *userMessage)

	raw, err := s.completions.Complete(ctx, chat.Messages)
	if err != nil {
		return "", nil, err
	}
	reply := trimReply(raw)

	assistantMessage, err := s.chats.AppendMessage(ctx, chat.ID, domain.MessageRoleAssistant, reply)
	if err != nil {
		return "", nil, err
	}
	chat.Messages = append(chat.Messages, *assistantMessage)

	return reply, chat, nil
}

func (s *ChatService) ListChats(ctx context.Context, userID uuid.UUID) ([]domain.ChatSummary, error) {
	return s.chats.ListByUser(ctx, userID)
}

func (s *ChatService) GetChat(ctx context.Context, id uuid.UUID) (*domain.Chat, error) {
	chat, err := s.chats.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	return chat, nil
}

func (s *ChatService) DeleteChat(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.chats.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrChatNotFound
		}
		return err
	}
	return nil
}

// trimReply strips markdown punctuation and keeps the first few sentences,
// one per line.
func trimReply(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '*', '_', '`', '~':
			return -1
		}
		return r
	}, raw)
	cleaned = strings.TrimSpace(cleaned)

	sentences := splitSentences(cleaned)
	if len(sentences) > maxReplyLen {
		sentences = sentences[:maxReplyLen]
	}
	return strings.Join(sentences, "\n")
}

func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if (r == '.' || r == '?' || r == '!') && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			if sentence := strings.TrimSpace(current.String()); sentence != "" {
				sentences = append(sentences, sentence)
			}
			current.Reset()
		}
	}
	if sentence := strings.TrimSpace(current.String()); sentence != "" {
		sentences = append(sentences, sentence)
	}
	return sentences
}
