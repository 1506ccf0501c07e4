package usecase

import (
	"context"

	"career-advisor/internal/domain/advice"
	"career-advisor/internal/domain/conversation"
	"career-advisor/internal/repository"
	ucchat "career-advisor/internal/usecase/chat"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ChatUsecase interface {
	ListConversations(ctx context.Context, userID uuid.UUID) ([]conversation.Conversation, error)
	ListMessages(ctx context.Context, userID, conversationID uuid.UUID) ([]conversation.Message, error)
	GetConversationHistory(ctx context.Context, userID, conversationID uuid.UUID) (ucchat.History, error)
	PostMessage(ctx context.Context, userID, conversationID uuid.UUID, content string) (ucchat.Reply, error)
	StartConversation(ctx context.Context, userID uuid.UUID, content string) (ucchat.Reply, error)
}

func NewChatUsecase(store repository.ChatStore, advisor advice.Advisor, notifier ucchat.Notifier, logger zerolog.Logger) ChatUsecase {
	return ucchat.NewService(store, advisor, notifier, logger)
}
