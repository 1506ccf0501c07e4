package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"career-advisor/internal/domain/advice"
	"career-advisor/internal/domain/conversation"
	"career-advisor/internal/domain/user"
	"career-advisor/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const MaxMessageLength = 4000

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

type Notifier interface {
	MessageCreated(userID uuid.UUID, m conversation.Message)
}

type History struct {
	Conversation conversation.Conversation
	Messages     []conversation.Message
}

type Reply struct {
	Conversation conversation.Conversation
	UserMessage  conversation.Message
	Message      conversation.Message
	Success      bool
}

type Service struct {
	store    repository.ChatStore
	advisor  advice.Advisor
	notifier Notifier
	logger   zerolog.Logger
}

func NewService(store repository.ChatStore, advisor advice.Advisor, notifier Notifier, logger zerolog.Logger) *Service {
	return &Service{
		store:    store,
		advisor:  advisor,
		notifier: notifier,
		logger:   logger.With().Str("component", "chat").Logger(),
	}
}

func (s *Service) ListConversations(ctx context.Context, userID uuid.UUID) ([]conversation.Conversation, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	items, err := s.store.Repositories().Conversations.ListByUserID(ctx, userID)
	if err != nil {
		return nil, internal(err)
	}
	return items, nil
}

func (s *Service) ListMessages(ctx context.Context, userID, conversationID uuid.UUID) ([]conversation.Message, error) {
	if userID == uuid.Nil || conversationID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	repos := s.store.Repositories()

	if err := s.ensureOwned(ctx, repos, conversationID, userID); err != nil {
		return nil, err
	}

	msgs, err := repos.Messages.ListByConversationID(ctx, conversationID)
	if err != nil {
		return nil, internal(err)
	}
	return msgs, nil
}

func (s *Service) GetConversationHistory(ctx context.Context, userID, conversationID uuid.UUID) (History, error) {
	if userID == uuid.Nil || conversationID == uuid.Nil {
		return History{}, ErrInvalidInput
	}
	repos := s.store.Repositories()

	conv, err := repos.Conversations.GetForUser(ctx, conversationID, userID)
	if err != nil {
		if errors.Is(err, conversation.ErrNotFound) {
			return History{}, conversation.ErrNotFound
		}
		return History{}, internal(err)
	}

	msgs, err := repos.Messages.ListByConversationID(ctx, conversationID)
	if err != nil {
		return History{}, internal(err)
	}
	return History{Conversation: conv, Messages: msgs}, nil
}

// The user turn is committed before the advisor is called.
func (s *Service) PostMessage(ctx context.Context, userID, conversationID uuid.UUID, content string) (Reply, error) {
	if userID == uuid.Nil || conversationID == uuid.Nil {
		return Reply{}, ErrInvalidInput
	}
	if err := ValidateContent(content); err != nil {
		return Reply{}, err
	}
	repos := s.store.Repositories()

	if err := s.ensureOwned(ctx, repos, conversationID, userID); err != nil {
		return Reply{}, err
	}

	userMsg, err := repos.Messages.Create(ctx, conversationID, true, content)
	if err != nil {
		return Reply{}, internal(err)
	}
	s.notify(userID, userMsg)

	reply := Reply{UserMessage: userMsg}
	err = s.respond(ctx, repos, userID, conversationID, content, &reply)
	return reply, err
}

func (s *Service) StartConversation(ctx context.Context, userID uuid.UUID, content string) (Reply, error) {
	if userID == uuid.Nil {
		return Reply{}, ErrInvalidInput
	}
	if err := ValidateContent(content); err != nil {
		return Reply{}, err
	}

	var (
		conv    conversation.Conversation
		userMsg conversation.Message
	)
	err := s.store.InTx(ctx, func(tx repository.ChatRepositories) error {
		var err error
		conv, err = tx.Conversations.Create(ctx, userID, conversation.DefaultTitle)
		if err != nil {
			return err
		}
		userMsg, err = tx.Messages.Create(ctx, conv.ID, true, content)
		return err
	})
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Reply{}, user.ErrNotFound
		}
		return Reply{}, internal(err)
	}
	s.notify(userID, userMsg)

	reply := Reply{Conversation: conv, UserMessage: userMsg}
	err = s.respond(ctx, s.store.Repositories(), userID, conv.ID, content, &reply)
	return reply, err
}

func (s *Service) respond(ctx context.Context, repos repository.ChatRepositories, userID, conversationID uuid.UUID, question string, reply *Reply) error {
	profile, err := repos.Users.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return user.ErrProfileNotFound
		}
		return internal(err)
	}

	res := s.advisor.GetCareerAdvice(ctx, advice.ProfileFromUser(profile), question)
	if !res.Success {
		s.logger.Warn().
			Str("user_id", userID.String()).
			Str("conversation_id", conversationID.String()).
			Str("cause", res.Error).
			Msg("advice unavailable, storing apology")
	}

	aiMsg, err := repos.Messages.Create(ctx, conversationID, false, res.Response)
	if err != nil {
		return internal(err)
	}
	s.notify(userID, aiMsg)

	reply.Message = aiMsg
	reply.Success = res.Success
	return nil
}

func (s *Service) ensureOwned(ctx context.Context, repos repository.ChatRepositories, conversationID, userID uuid.UUID) error {
	ok, err := repos.Conversations.ExistsForUser(ctx, conversationID, userID)
	if err != nil {
		return internal(err)
	}
	if !ok {
		return conversation.ErrNotFound
	}
	return nil
}

func (s *Service) notify(userID uuid.UUID, m conversation.Message) {
	if s.notifier == nil {
		return
	}
	s.notifier.MessageCreated(userID, m)
}

func ValidateContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(trimmed) > MaxMessageLength {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, MaxMessageLength)
	}
	return nil
}

func internal(err error) error {
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
