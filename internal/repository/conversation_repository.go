package repository

import (
	"context"
	"errors"
	"strings"

	"career-advisor/internal/database"
	"career-advisor/internal/domain/conversation"
	"career-advisor/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresConversationRepository struct {
	db database.Querier
}

func NewPostgresConversationRepository(db database.Querier) *PostgresConversationRepository {
	return &PostgresConversationRepository{db: db}
}

var _ conversation.Repository = (*PostgresConversationRepository)(nil)

func (r *PostgresConversationRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]conversation.Conversation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, title, created_at
		 FROM conversations
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]conversation.Conversation, 0)
	for rows.Next() {
		var c conversation.Conversation
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresConversationRepository) GetForUser(ctx context.Context, conversationID uuid.UUID, userID uuid.UUID) (conversation.Conversation, error) {
	var c conversation.Conversation
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, title, created_at
		 FROM conversations
		 WHERE id = $1 AND user_id = $2`,
		conversationID, userID,
	).Scan(&c.ID, &c.UserID, &c.Title, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return conversation.Conversation{}, conversation.ErrNotFound
		}
		return conversation.Conversation{}, err
	}
	return c, nil
}

func (r *PostgresConversationRepository) ExistsForUser(ctx context.Context, conversationID uuid.UUID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM conversations WHERE id = $1 AND user_id = $2)`,
		conversationID, userID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresConversationRepository) Create(ctx context.Context, userID uuid.UUID, title string) (conversation.Conversation, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = conversation.DefaultTitle
	}

	var c conversation.Conversation
	err := r.db.QueryRow(ctx,
		`INSERT INTO conversations (id, user_id, title)
		 VALUES (gen_random_uuid(), $1, $2)
		 RETURNING id, user_id, title, created_at`,
		userID, title,
	).Scan(&c.ID, &c.UserID, &c.Title, &c.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return conversation.Conversation{}, user.ErrNotFound
		}
		return conversation.Conversation{}, err
	}
	return c, nil
}
