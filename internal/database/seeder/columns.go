package seeder

import (
	"context"
	"fmt"
	"strings"

	"career-advisor/internal/database"
)

func checkColumns(ctx context.Context, q database.Querier, t Table) error {
	rows, err := q.Query(ctx,
		`SELECT column_name
		 FROM information_schema.columns
		 WHERE table_schema = current_schema() AND table_name = $1 AND column_name = ANY($2)`,
		t.Name, t.Columns,
	)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", t.Name, err)
	}
	defer rows.Close()

	found := make(map[string]bool, len(t.Columns))
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		found[c] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []string
	for _, c := range t.Columns {
		if !found[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns %s; run migrations first", t.Name, strings.Join(missing, ", "))
	}
	return nil
}
