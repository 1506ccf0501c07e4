package seeder

import (
	"context"

	"career-advisor/internal/database"
)

type Table struct {
	Name    string
	Columns []string
}

type Seeder interface {
	Name() string
	Tables() []Table
	Seed(ctx context.Context, q database.Querier) (int64, error)
}
