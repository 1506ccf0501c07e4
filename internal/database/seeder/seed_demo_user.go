package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"career-advisor/internal/database"
)

type DemoUserSeeder struct{}

const (
	demoUserName  = "Jesus"
	demoUserEmail = "demo@career-advisor.local"
	demoYears     = 5
	demoGoals     = "Become a technical lead, learn more about AI/ML, build scalable products and mentor other developers"
)

var demoSkills = []string{
	"Python", "Django", "JavaScript", "React", "Next.js",
	"PostgreSQL", "AWS", "Docker", "Git", "REST APIs",
}

func (DemoUserSeeder) Name() string { return "demo_user" }

func (DemoUserSeeder) Tables() []Table {
	return []Table{
		{Name: "users", Columns: []string{"id", "name", "email"}},
		{Name: "user_profiles", Columns: []string{"user_id", "years_experience", "skills", "career_goals", "preferred_work_style"}},
	}
}

func (DemoUserSeeder) Seed(ctx context.Context, q database.Querier) (int64, error) {
	skills, err := json.Marshal(demoSkills)
	if err != nil {
		return 0, err
	}

	users, err := q.Exec(ctx,
		`INSERT INTO users (id, name, email) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (email) DO NOTHING`,
		demoUserName, demoUserEmail,
	)
	if err != nil {
		return 0, err
	}

	var userID string
	if err := q.QueryRow(ctx, `SELECT id::text FROM users WHERE email = $1`, demoUserEmail).Scan(&userID); err != nil {
		return users, fmt.Errorf("lookup demo user: %w", err)
	}

	profiles, err := q.Exec(ctx,
		`INSERT INTO user_profiles (id, user_id, years_experience, skills, career_goals, preferred_work_style)
		 VALUES (gen_random_uuid(), $1::uuid, $2, $3::jsonb, $4, $5)
		 ON CONFLICT (user_id) DO NOTHING`,
		userID, demoYears, string(skills), demoGoals, "remote",
	)
	return users + profiles, err
}
