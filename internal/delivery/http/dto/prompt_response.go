package dto

import (
	"career-advisor/internal/domain/prompt"

	"github.com/google/uuid"
)

type PromptResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	PromptText string    `json:"prompt_text"`
}

func NewPromptResponses(items []prompt.Prompt) []PromptResponse {
	out := make([]PromptResponse, 0, len(items))
	for _, p := range items {
		out = append(out, PromptResponse{ID: p.ID, Title: p.Title, PromptText: p.PromptText})
	}
	return out
}
