package env

import (
	"errors"
	"testing"
)

func TestLoad_NoKeyFails(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	_, err := Load()
	if !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("expected ErrNoAPIKey, got %v", err)
	}
}

func TestLoad_OpenRouterOverrides(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "sk-or-v1-test")
	t.Setenv("OPENROUTER_MODEL", "deepseek/deepseek-chat")
	t.Setenv("OPENROUTER_API_BASE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIKey != "sk-or-v1-test" {
		t.Errorf("unexpected key: %q", cfg.APIKey)
	}
	if cfg.Model != "deepseek/deepseek-chat" {
		t.Errorf("model override lost: %q", cfg.Model)
	}
}

func TestLoad_DeepSeekKeyTakesPrecedence(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "sk-native")
	t.Setenv("OPENROUTER_API_KEY", "sk-or-v1-test")
	t.Setenv("DEEPSEEK_MODEL", "deepseek-chat")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIKey != "sk-native" {
		t.Errorf("DEEPSEEK_API_KEY should win, got %q", cfg.APIKey)
	}
	if cfg.Model != "deepseek-chat" {
		t.Errorf("unexpected model: %q", cfg.Model)
	}
}
