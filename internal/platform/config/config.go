package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is loaded once at startup and passed by injection; no package keeps a
// process-wide copy.
type Config struct {
	Port string `env:"PORT" env-default:"8080"`

	// TokenSecret signs and verifies identity tokens. Required.
	TokenSecret string        `env:"TOKEN_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" env-default:"30m"`

	// StorageBackend selects the persistence adapter: memory | postgres.
	StorageBackend string `env:"STORAGE_BACKEND" env-default:"memory"`
	DatabaseURL    string `env:"DATABASE_URL"`

	UploadDir string `env:"UPLOAD_DIR" env-default:"uploads"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
}

func Load() (Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	if cfg.TokenSecret == "" {
		return Config{}, fmt.Errorf("missing required env var: TOKEN_SECRET")
	}
	if cfg.StorageBackend == "postgres" && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("STORAGE_BACKEND=postgres requires DATABASE_URL")
	}
	return cfg, nil
}
