package conversation

import (
	"time"

	"github.com/google/uuid"
)

const DefaultTitle = "New Conversation"

type Conversation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	CreatedAt time.Time
}

type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	IsHuman        bool
	Content        string
	CreatedAt      time.Time
}
