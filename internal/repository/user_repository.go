package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"career-advisor/internal/database"
	"career-advisor/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresUserRepository struct {
	db database.Querier
}

func NewPostgresUserRepository(db database.Querier) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

var _ user.Repository = (*PostgresUserRepository)(nil)

func (r *PostgresUserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, created_at, updated_at
		 FROM users
		 ORDER BY created_at ASC, email ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	var u user.User
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, created_at, updated_at
		 FROM users
		 WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	var (
		p      user.Profile
		skills []byte
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, years_experience, skills, career_goals, preferred_work_style, created_at, updated_at
		 FROM user_profiles
		 WHERE user_id = $1`,
		userID,
	).Scan(&p.ID, &p.UserID, &p.YearsExperience, &skills, &p.CareerGoals, &p.PreferredWorkStyle, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, err
	}

	if len(skills) > 0 && string(skills) != "null" {
		if err := json.Unmarshal(skills, &p.Skills); err != nil {
			return user.Profile{}, fmt.Errorf("decode profile skills: %w", err)
		}
	}
	return p, nil
}
