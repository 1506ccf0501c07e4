package ws

import (
	"time"

	"career-advisor/internal/delivery/http/dto"
	"career-advisor/internal/domain/conversation"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const EventMessageCreated = "message_created"

type MessageCreatedEvent struct {
	Type           string              `json:"type"`
	ConversationID uuid.UUID           `json:"conversation_id"`
	Message        dto.MessageResponse `json:"message"`
	Timestamp      string              `json:"timestamp"`
}

type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) MessageCreated(userID uuid.UUID, m conversation.Message) {
	if n == nil || n.hub == nil {
		return
	}

	evt := MessageCreatedEvent{
		Type:           EventMessageCreated,
		ConversationID: m.ConversationID,
		Message:        dto.NewMessageResponse(m),
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(userID, b)
}
