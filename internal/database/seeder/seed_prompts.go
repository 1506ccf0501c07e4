package seeder

import (
	"context"
	"fmt"

	"career-advisor/internal/database"
)

type promptSeed struct {
	Title      string
	PromptText string
	Category   string
	IsActive   bool
}

var defaultPrompts = []promptSeed{
	{Title: "Career Path Guidance", PromptText: "What are the best career paths for someone with my skills?", Category: "career", IsActive: true},
	{Title: "Skill Development", PromptText: "What skills should I focus on developing next?", Category: "skills", IsActive: true},
	{Title: "Leadership Transition", PromptText: "How do I move from senior engineer into a technical lead role?", Category: "career", IsActive: true},
	{Title: "Salary Negotiation", PromptText: "How should I prepare to negotiate my salary for my next role?", Category: "compensation", IsActive: true},
	{Title: "Interview Preparation", PromptText: "How can I prepare for system design and coding interviews?", Category: "interviews", IsActive: true},
	{Title: "Switching Specialization", PromptText: "How can I move into AI/ML engineering from my current background?", Category: "skills", IsActive: true},
	{Title: "Resume Review", PromptText: "What should I highlight on my resume for backend roles?", Category: "career", IsActive: false},
}

type PromptsSeeder struct{}

func (PromptsSeeder) Name() string { return "prompts" }

func (PromptsSeeder) Tables() []Table {
	return []Table{{Name: "prompts", Columns: []string{"id", "title", "prompt_text", "category", "is_active"}}}
}

func (PromptsSeeder) Seed(ctx context.Context, q database.Querier) (int64, error) {
	var inserted int64
	for _, it := range defaultPrompts {
		n, err := q.Exec(ctx,
			`INSERT INTO prompts (id, title, prompt_text, category, is_active)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4)
			 ON CONFLICT (title) DO NOTHING`,
			it.Title, it.PromptText, it.Category, it.IsActive,
		)
		if err != nil {
			return inserted, fmt.Errorf("insert prompt %q: %w", it.Title, err)
		}
		inserted += n
	}
	return inserted, nil
}
