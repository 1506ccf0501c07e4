package dto

import (
	"time"

	"career-advisor/internal/domain/conversation"

	"github.com/google/uuid"
)

type ConversationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uuid.UUID `json:"user_id"`
}

type MessageResponse struct {
	ID             uuid.UUID `json:"id"`
	IsHuman        bool      `json:"is_human"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	ConversationID uuid.UUID `json:"conversation_id"`
}

type ConversationHistoryResponse struct {
	ConversationResponse
	Messages []MessageResponse `json:"messages"`
}

func NewConversationResponse(c conversation.Conversation) ConversationResponse {
	return ConversationResponse{ID: c.ID, Title: c.Title, CreatedAt: c.CreatedAt, UserID: c.UserID}
}

func NewConversationResponses(items []conversation.Conversation) []ConversationResponse {
	out := make([]ConversationResponse, 0, len(items))
	for _, c := range items {
		out = append(out, NewConversationResponse(c))
	}
	return out
}

func NewMessageResponse(m conversation.Message) MessageResponse {
	return MessageResponse{
		ID:             m.ID,
		IsHuman:        m.IsHuman,
		Content:        m.Content,
		CreatedAt:      m.CreatedAt,
		ConversationID: m.ConversationID,
	}
}

func NewMessageResponses(items []conversation.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewMessageResponse(m))
	}
	return out
}
