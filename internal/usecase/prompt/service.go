package prompt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"career-advisor/internal/domain/prompt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const ActiveCacheKey = "prompts:active"

var ErrInternal = errors.New("internal error")

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type Service struct {
	repo   prompt.Repository
	cache  Cache
	ttl    time.Duration
	logger zerolog.Logger
}

func NewService(repo prompt.Repository, cache Cache, ttl time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With().Str("component", "prompts").Logger(),
	}
}

// Only bodies are cached; is_active is read from the database on every call.
func (s *Service) ListActive(ctx context.Context) ([]prompt.Prompt, error) {
	if s.cache == nil {
		return s.load(ctx)
	}

	var cached []prompt.Prompt
	hit, err := s.cache.GetJSON(ctx, ActiveCacheKey, &cached)
	if err != nil {
		s.logger.Debug().Err(err).Msg("prompt cache read failed")
	}
	if !hit {
		return s.loadAndStore(ctx)
	}

	ids, err := s.repo.ActiveIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	out, complete := restrictTo(cached, ids)
	if !complete {
		return s.loadAndStore(ctx)
	}
	return out, nil
}

func (s *Service) load(ctx context.Context) ([]prompt.Prompt, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return onlyActive(items), nil
}

func (s *Service) loadAndStore(ctx context.Context) ([]prompt.Prompt, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetJSON(ctx, ActiveCacheKey, items, s.ttl); err != nil {
		s.logger.Debug().Err(err).Msg("prompt cache write failed")
	}
	return items, nil
}

func restrictTo(cached []prompt.Prompt, ids []uuid.UUID) ([]prompt.Prompt, bool) {
	active := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		active[id] = true
	}
	out := make([]prompt.Prompt, 0, len(ids))
	for _, p := range cached {
		if active[p.ID] {
			out = append(out, p)
		}
	}
	return out, len(out) == len(active)
}

func onlyActive(items []prompt.Prompt) []prompt.Prompt {
	out := make([]prompt.Prompt, 0, len(items))
	for _, p := range items {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}
