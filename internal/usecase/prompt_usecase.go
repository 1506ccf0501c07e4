package usecase

import (
	"context"
	"time"

	"career-advisor/internal/domain/prompt"
	ucprompt "career-advisor/internal/usecase/prompt"

	"github.com/rs/zerolog"
)

type PromptUsecase interface {
	ListActive(ctx context.Context) ([]prompt.Prompt, error)
}

func NewPromptUsecase(repo prompt.Repository, cache ucprompt.Cache, ttl time.Duration, logger zerolog.Logger) PromptUsecase {
	return ucprompt.NewService(repo, cache, ttl, logger)
}
