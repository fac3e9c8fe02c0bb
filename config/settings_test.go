package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUserConfigRoundTrip(t *testing.T) {
	dataDir := t.TempDir()

	cfg := &UserConfig{
		DefaultProvider: "openrouter",
		OpenRouter: OpenRouterConfig{
			BaseURL:      "https://openrouter.ai/api/v1",
			APIKey:       "sk-test",
			DefaultModel: "openai/gpt-oss-20b:free",
		},
		Ollama: OllamaConfig{Host: "http://localhost:11434"},
	}
	if err := SaveUserConfig(cfg, dataDir); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadUserConfig(dataDir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.DefaultProvider != "openrouter" {
		t.Errorf("provider did not round-trip: %q", loaded.DefaultProvider)
	}
	if loaded.OpenRouter.APIKey != "sk-test" {
		t.Errorf("api key did not round-trip: %q", loaded.OpenRouter.APIKey)
	}
	if loaded.OpenRouter.DefaultModel != "openai/gpt-oss-20b:free" {
		t.Errorf("model did not round-trip: %q", loaded.OpenRouter.DefaultModel)
	}
	if loaded.Ollama.Host != "http://localhost:11434" {
		t.Errorf("ollama host did not round-trip: %q", loaded.Ollama.Host)
	}

	// Config may hold an API key, so it must be user-only.
	info, err := os.Stat(filepath.Join(dataDir, "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected 0600 permissions, got %o", perm)
	}
}

func TestLoadUserConfigCreatesDefault(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := LoadUserConfig(dataDir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.DefaultProvider == "" {
		t.Error("default config must name a provider")
	}
	if !FileExists(filepath.Join(dataDir, "config.toml")) {
		t.Error("first load must write the default config file")
	}
}

func TestEnvVarValidation(t *testing.T) {
	t.Setenv("WILLPRO_API_KEY", "")
	t.Setenv("WILLPRO_MODEL", "")
	t.Setenv("WILLPRO_DATA_DIR", "")

	if HasAnyEnvVar() {
		t.Error("expected no env vars")
	}

	t.Setenv("WILLPRO_API_KEY", "sk-test")
	if !HasAnyEnvVar() || HasAllEnvVars() {
		t.Error("one variable set must count as partial")
	}
	if missing := GetMissingEnvVar(); missing != "WILLPRO_MODEL" {
		t.Errorf("expected WILLPRO_MODEL missing first, got %q", missing)
	}

	t.Setenv("WILLPRO_MODEL", "openai/gpt-oss-20b:free")
	t.Setenv("WILLPRO_DATA_DIR", t.TempDir())
	if !HasAllEnvVars() {
		t.Error("all variables set must count as complete")
	}
	if missing := GetMissingEnvVar(); missing != "" {
		t.Errorf("expected nothing missing, got %q", missing)
	}
}

func TestDefaultDataDirectory(t *testing.T) {
	if got := DefaultSystemConfig().DataDirectory; got != GetDefaultDataDir() {
		t.Errorf("default system config must use the platform data dir, got %q", got)
	}
}

func TestExpandPath(t *testing.T) {
	home := GetHomeDir()

	if got := ExpandPath("~/data"); got != filepath.Join(home, "data") {
		t.Errorf("expected home expansion, got %q", got)
	}
	if got := ExpandPath("/absolute/path"); got != "/absolute/path" {
		t.Errorf("absolute paths must pass through, got %q", got)
	}
}
