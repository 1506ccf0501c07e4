package app

import (
	"context"
	"fmt"
	"time"

	"career-advisor/internal/config"
	"career-advisor/internal/database"
	"career-advisor/internal/database/migration"
	dbpostgres "career-advisor/internal/database/postgres"
	"career-advisor/internal/delivery/http/handler"
	"career-advisor/internal/delivery/http/middleware"
	"career-advisor/internal/delivery/http/routes"
	"career-advisor/internal/domain/advice"
	"career-advisor/internal/infrastructure/cache"
	"career-advisor/internal/infrastructure/llm"
	"career-advisor/internal/pkg/jwt"
	"career-advisor/internal/repository"
	"career-advisor/internal/usecase"
	"career-advisor/internal/ws"
	"career-advisor/migrations"

	"github.com/rs/zerolog"
)

type Container struct {
	Config config.Config
	Logger zerolog.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Routes *routes.Registry

	stopHub context.CancelFunc
}

func NewContainer(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*Container, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		n, err := migration.Runner{Source: migrations.FS, Logger: logger}.Run(ctx, db.SQLDB())
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info().Int("applied", n).Msg("migrations up to date")
	}

	redis := cache.NewRedis(ctx, cfg.Redis, logger)
	advisor := llm.NewClient(cfg.AI, logger)

	return Build(cfg, logger, db, redis, advisor), nil
}

func Build(cfg config.Config, logger zerolog.Logger, db database.DB, redis *cache.Redis, advisor advice.Advisor) *Container {
	hubCtx, stopHub := context.WithCancel(context.Background())
	hub := ws.NewHub(logger)
	go hub.Run(hubCtx)

	var jwtSvc jwt.Service
	if cfg.JWT.Enabled() {
		jwtSvc = jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.AccessExpiresIn)
	}

	chatStore := repository.NewPostgresChatStore(db)
	users := repository.NewPostgresUserRepository(db)
	prompts := repository.NewPostgresPromptRepository(db)

	chatUC := usecase.NewChatUsecase(chatStore, advisor, ws.NewNotifier(hub), logger)
	userUC := usecase.NewUserUsecase(users)
	adviceUC := usecase.NewAdviceUsecase(users, advisor)
	promptUC := usecase.NewPromptUsecase(prompts, redis, cfg.Redis.PromptsCacheTTL, logger)

	var cachePinger handler.Pinger
	if redis.Enabled() {
		cachePinger = redis
	}

	reg := &routes.Registry{
		Health:        handler.NewHealthHandler(db, cachePinger),
		Users:         handler.NewUserHandler(userUC),
		Conversations: handler.NewConversationHandler(chatUC),
		Advice:        handler.NewAdviceHandler(adviceUC),
		Prompts:       handler.NewPromptHandler(promptUC),
		WS:            ws.NewHandler(hub, cfg.App.CORSAllowOrigins, logger),
		Owner:         middleware.NewOwnerMiddleware(jwtSvc).Middleware(),
	}

	return &Container{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Cache:   redis,
		Hub:     hub,
		Routes:  reg,
		stopHub: stopHub,
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.stopHub != nil {
		c.stopHub()
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
