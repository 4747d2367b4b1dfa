package env

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// ErrNoAPIKey is the one unrecoverable startup condition: without model-call
// credentials the assistant cannot run at all.
var ErrNoAPIKey = errors.New("no API key found: set DEEPSEEK_API_KEY or OPENROUTER_API_KEY")

// Config is built once at startup and passed by reference into the container.
// Nothing in the engine reads environment variables after this point.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Load reads an optional .env file and assembles the configuration. A missing
// .env is fine for CI and for users who export variables directly.
func Load() (Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Info: no .env file found")
	}

	key := os.Getenv("DEEPSEEK_API_KEY")
	if key == "" {
		key = os.Getenv("OPENROUTER_API_KEY")
	}
	if key == "" {
		return Config{}, ErrNoAPIKey
	}

	cfg := Config{APIKey: key}
	if isOpenRouterKey(key) {
		cfg.BaseURL = os.Getenv("OPENROUTER_API_BASE")
		cfg.Model = os.Getenv("OPENROUTER_MODEL")
	} else {
		cfg.BaseURL = os.Getenv("DEEPSEEK_API_BASE")
		cfg.Model = os.Getenv("DEEPSEEK_MODEL")
	}
	return cfg, nil
}

func isOpenRouterKey(key string) bool {
	return len(key) >= 6 && key[:6] == "sk-or-"
}
