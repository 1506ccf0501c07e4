package main

import (
	"context"
	"flag"
	"os"
	"time"

	"career-advisor/internal/config"
	"career-advisor/internal/database/migration"
	dbpostgres "career-advisor/internal/database/postgres"
	"career-advisor/internal/database/seeder"
	"career-advisor/internal/infrastructure/cache"
	"career-advisor/internal/logger"
	ucprompt "career-advisor/internal/usecase/prompt"
	"career-advisor/migrations"
)

func main() {
	seed := flag.Bool("seed", false, "run seeders after migrating")
	flag.Parse()

	boot := logger.Startup(os.Stderr)
	cfg, err := config.Load()
	if err != nil {
		boot.Fatal().Err(err).Msg("failed to load config")
	}
	log := logger.New(cfg.App)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	defer db.Close()

	n, err := migration.Runner{Source: migrations.FS, Logger: log}.Run(ctx, db.SQLDB())
	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Int("applied", n).Msg("migrations done")

	if !*seed {
		return
	}

	results, err := seeder.Runner{Seeders: seeder.Defaults(), Logger: log}.Run(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	var inserted int64
	for _, r := range results {
		inserted += r.Inserted
	}

	redis := cache.NewRedis(ctx, cfg.Redis, log)
	defer redis.Close()
	if err := redis.Delete(ctx, ucprompt.ActiveCacheKey); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate prompt cache")
	}

	log.Info().Int64("inserted", inserted).Msg("seeding done")
}
