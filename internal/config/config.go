package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	AI       AIConfig
	Redis    RedisConfig
	JWT      JWTConfig
}

type AppConfig struct {
	AppName          string `validate:"required"`
	Environment      string `validate:"oneof=development production staging test"`
	HTTPPort         string `validate:"required,numeric"`
	LogLevel         string `validate:"oneof=debug info warn error"`
	CORSAllowOrigins []string
	ExposeErrors     bool
}

type DatabaseConfig struct {
	URL                 string `validate:"required"`
	PoolMaxConns        int32  `validate:"min=0"`
	PoolMinConns        int32  `validate:"min=0"`
	PoolMaxConnLifetime time.Duration
	PoolMaxConnIdleTime time.Duration
	ConnectTimeout      time.Duration
	AutoMigrate         bool
}

type AIConfig struct {
	APIKey      string        `validate:"required"`
	BaseURL     string        `validate:"required,url"`
	Model       string        `validate:"required"`
	Timeout     time.Duration `validate:"min=1s,max=10m"`
	Temperature float32       `validate:"min=0,max=2"`
}

type RedisConfig struct {
	Addr            string
	Password        string
	DB              int `validate:"min=0"`
	PromptsCacheTTL time.Duration
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Addr) != ""
}

type JWTConfig struct {
	Secret          string
	AccessExpiresIn time.Duration
}

func (j JWTConfig) Enabled() bool {
	return j.Secret != ""
}

func (c Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v, _ := lookup(key)
		v = strings.TrimSpace(v)
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			return fallback
		}
		return v
	}
	dur := func(key string, fallback time.Duration) time.Duration {
		raw := opt(key, "")
		if raw == "" {
			return fallback
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			invalid = append(invalid, key)
			return fallback
		}
		return d
	}
	integer := func(key string, fallback int) int {
		raw := opt(key, "")
		if raw == "" {
			return fallback
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			invalid = append(invalid, key)
			return fallback
		}
		return n
	}
	boolean := func(key string, fallback bool) bool {
		raw := opt(key, "")
		if raw == "" {
			return fallback
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return fallback
		}
		return b
	}

	env := normalizeEnv(opt("APP_ENV", "production"))
	cfg.App = AppConfig{
		AppName:          opt("APP_NAME", "career-advisor"),
		Environment:      env,
		HTTPPort:         strings.TrimPrefix(opt("HTTP_PORT", "8000"), ":"),
		LogLevel:         strings.ToLower(opt("LOG_LEVEL", "info")),
		CORSAllowOrigins: splitList(opt("CORS_ALLOW_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		ExposeErrors:     boolean("APP_EXPOSE_ERRORS", env == "development"),
	}

	cfg.Database = DatabaseConfig{
		URL:                 req("DATABASE_URL"),
		PoolMaxConns:        int32(integer("DB_POOL_MAX_CONNS", 10)),
		PoolMinConns:        int32(integer("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime: dur("DB_POOL_MAX_CONN_LIFETIME", time.Hour),
		PoolMaxConnIdleTime: dur("DB_POOL_MAX_CONN_IDLE_TIME", 30*time.Minute),
		ConnectTimeout:      dur("DB_CONNECT_TIMEOUT", 5*time.Second),
		AutoMigrate:         boolean("DB_AUTO_MIGRATE", true),
	}

	temperature := float32(0.7)
	if raw := opt("AI_TEMPERATURE", ""); raw != "" {
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			invalid = append(invalid, "AI_TEMPERATURE")
		} else {
			temperature = float32(f)
		}
	}
	cfg.AI = AIConfig{
		APIKey:      req("XAI_API_KEY"),
		BaseURL:     strings.TrimRight(opt("XAI_BASE_URL", "https://api.x.ai/v1"), "/"),
		Model:       opt("XAI_MODEL", "grok-4-latest"),
		Timeout:     dur("AI_TIMEOUT", 30*time.Second),
		Temperature: temperature,
	}

	cfg.Redis = RedisConfig{
		Addr:            opt("REDIS_ADDR", ""),
		Password:        opt("REDIS_PASSWORD", ""),
		DB:              integer("REDIS_DB", 0),
		PromptsCacheTTL: dur("PROMPTS_CACHE_TTL", 10*time.Minute),
	}

	secret, _ := lookup("JWT_SECRET")
	cfg.JWT = JWTConfig{
		Secret:          strings.TrimSpace(secret),
		AccessExpiresIn: dur("JWT_ACCESS_EXPIRES_IN", 24*time.Hour),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func normalizeEnv(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "dev", "development", "local":
		return "development"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return "production"
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
