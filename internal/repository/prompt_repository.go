package repository

import (
	"context"

	"career-advisor/internal/database"
	"career-advisor/internal/domain/prompt"

	"github.com/google/uuid"
)

type PostgresPromptRepository struct {
	db database.Querier
}

func NewPostgresPromptRepository(db database.Querier) *PostgresPromptRepository {
	return &PostgresPromptRepository{db: db}
}

var _ prompt.Repository = (*PostgresPromptRepository)(nil)

func (r *PostgresPromptRepository) ListActive(ctx context.Context) ([]prompt.Prompt, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, prompt_text, category, is_active, created_at
		 FROM prompts
		 WHERE is_active = true
		 ORDER BY category ASC, title ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]prompt.Prompt, 0)
	for rows.Next() {
		var p prompt.Prompt
		if err := rows.Scan(&p.ID, &p.Title, &p.PromptText, &p.Category, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, err
		}
		if !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPromptRepository) ActiveIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM prompts WHERE is_active = true`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
