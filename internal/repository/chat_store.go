package repository

import (
	"context"

	"career-advisor/internal/database"
	"career-advisor/internal/domain/conversation"
	"career-advisor/internal/domain/user"
)

type ChatRepositories struct {
	Users         user.Repository
	Conversations conversation.Repository
	Messages      conversation.MessageRepository
}

func NewChatRepositories(q database.Querier) ChatRepositories {
	return ChatRepositories{
		Users:         NewPostgresUserRepository(q),
		Conversations: NewPostgresConversationRepository(q),
		Messages:      NewPostgresMessageRepository(q),
	}
}

type ChatStore interface {
	Repositories() ChatRepositories
	InTx(ctx context.Context, fn func(ChatRepositories) error) error
}

type PostgresChatStore struct {
	db    database.DB
	repos ChatRepositories
}

func NewPostgresChatStore(db database.DB) *PostgresChatStore {
	return &PostgresChatStore{db: db, repos: NewChatRepositories(db)}
}

func (s *PostgresChatStore) Repositories() ChatRepositories {
	return s.repos
}

func (s *PostgresChatStore) InTx(ctx context.Context, fn func(ChatRepositories) error) error {
	return database.WithTx(ctx, s.db, func(tx database.Tx) error {
		return fn(NewChatRepositories(tx))
	})
}
