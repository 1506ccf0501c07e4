package conversation

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("conversation not found")

type Repository interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]Conversation, error)
	GetForUser(ctx context.Context, conversationID uuid.UUID, userID uuid.UUID) (Conversation, error)
	ExistsForUser(ctx context.Context, conversationID uuid.UUID, userID uuid.UUID) (bool, error)
	Create(ctx context.Context, userID uuid.UUID, title string) (Conversation, error)
}

type MessageRepository interface {
	ListByConversationID(ctx context.Context, conversationID uuid.UUID) ([]Message, error)
	Create(ctx context.Context, conversationID uuid.UUID, isHuman bool, content string) (Message, error)
}
