package main

import (
	"flag"
	"fmt"
	"os"

	"career-advisor/internal/config"
	"career-advisor/internal/logger"
	"career-advisor/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func main() {
	userFlag := flag.String("user", "", "user id (uuid) to mint an access token for")
	flag.Parse()

	log := logger.Startup(zerolog.ConsoleWriter{Out: os.Stderr})

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		log.Fatal().Err(err).Str("user", *userFlag).Msg("invalid -user")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if !cfg.JWT.Enabled() {
		log.Fatal().Msg("JWT_SECRET is not set")
	}

	token, err := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.AccessExpiresIn).GenerateAccessToken(userID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to sign token")
	}
	fmt.Println(token)
}
