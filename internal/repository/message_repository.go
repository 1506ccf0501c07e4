package repository

import (
	"context"

	"career-advisor/internal/database"
	"career-advisor/internal/domain/conversation"

	"github.com/google/uuid"
)

type PostgresMessageRepository struct {
	db database.Querier
}

func NewPostgresMessageRepository(db database.Querier) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

var _ conversation.MessageRepository = (*PostgresMessageRepository)(nil)

// seq breaks created_at ties.
func (r *PostgresMessageRepository) ListByConversationID(ctx context.Context, conversationID uuid.UUID) ([]conversation.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, conversation_id, is_human, content, created_at
		 FROM messages
		 WHERE conversation_id = $1
		 ORDER BY created_at ASC, seq ASC`,
		conversationID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]conversation.Message, 0)
	for rows.Next() {
		var m conversation.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.IsHuman, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMessageRepository) Create(ctx context.Context, conversationID uuid.UUID, isHuman bool, content string) (conversation.Message, error) {
	var m conversation.Message
	err := r.db.QueryRow(ctx,
		`WITH inserted AS (
		   INSERT INTO messages (id, conversation_id, is_human, content)
		   VALUES (gen_random_uuid(), $1, $2, $3)
		   RETURNING id, conversation_id, is_human, content, created_at
		 ), touched AS (
		   UPDATE conversations SET updated_at = now() WHERE id = $1
		 )
		 SELECT id, conversation_id, is_human, content, created_at FROM inserted`,
		conversationID, isHuman, content,
	).Scan(&m.ID, &m.ConversationID, &m.IsHuman, &m.Content, &m.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return conversation.Message{}, conversation.ErrNotFound
		}
		return conversation.Message{}, err
	}
	return m, nil
}
