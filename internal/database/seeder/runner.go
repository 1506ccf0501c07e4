package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"career-advisor/internal/database"

	"github.com/rs/zerolog"
)

type Result struct {
	Seeder   string
	Inserted int64
}

type Runner struct {
	Seeders []Seeder
	Logger  zerolog.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) ([]Result, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}

	results := make([]Result, 0, len(r.Seeders))
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		start := time.Now()

		for _, t := range s.Tables() {
			if err := checkColumns(ctx, db, t); err != nil {
				return results, fmt.Errorf("seed %s: %w", s.Name(), err)
			}
		}

		var inserted int64
		err := database.WithTx(ctx, db, func(tx database.Tx) error {
			n, err := s.Seed(ctx, tx)
			inserted = n
			return err
		})
		if err != nil {
			r.Logger.Error().Err(err).Str("seeder", s.Name()).Msg("seeder failed")
			return results, fmt.Errorf("seed %s: %w", s.Name(), err)
		}

		r.Logger.Info().
			Str("seeder", s.Name()).
			Int64("inserted", inserted).
			Dur("took", time.Since(start)).
			Msg("seeded")
		results = append(results, Result{Seeder: s.Name(), Inserted: inserted})
	}
	return results, nil
}
