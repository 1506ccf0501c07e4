package prompt

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Prompt struct {
	ID         uuid.UUID
	Title      string
	PromptText string
	Category   string
	IsActive   bool
	CreatedAt  time.Time
}

type Repository interface {
	ListActive(ctx context.Context) ([]Prompt, error)
	ActiveIDs(ctx context.Context) ([]uuid.UUID, error)
}
