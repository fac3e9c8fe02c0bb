package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

type SystemConfig struct {
	DataDirectory string `toml:"data_directory"`
}

type OpenRouterConfig struct {
	BaseURL      string `toml:"base_url"`
	APIKey       string `toml:"api_key,omitempty"`
	DefaultModel string `toml:"default_model"`
}

type AnthropicConfig struct {
	BaseURL string `toml:"base_url,omitempty"`
	APIKey  string `toml:"api_key,omitempty"`
}

type OllamaConfig struct {
	Host string `toml:"host"`
}

type UserConfig struct {
	DefaultProvider string           `toml:"default_provider"`
	OpenRouter      OpenRouterConfig `toml:"openrouter"`
	Anthropic       AnthropicConfig  `toml:"anthropic,omitempty"`
	Ollama          OllamaConfig     `toml:"ollama,omitempty"`
}

type Config struct {
	DataDirectory     string
	DefaultProvider   string
	OpenRouterBaseURL string
	OpenRouterAPIKey  string
	DefaultModel      string
	AnthropicBaseURL  string
	AnthropicAPIKey   string
	OllamaHost        string
}

var Debug = false
var DebugLog *log.Logger

func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("WILLPRO_API_KEY"); key != "" {
		c.OpenRouterAPIKey = key
	}
	if model := os.Getenv("WILLPRO_MODEL"); model != "" {
		c.DefaultModel = model
	}
	if dataDir := os.Getenv("WILLPRO_DATA_DIR"); dataDir != "" {
		c.DataDirectory = dataDir
	}
}

func CheckDebug() bool {
	debug := os.Getenv("WILLPRO_DEBUG")
	return debug == "true" || debug == "1"
}

func InitDebugLog(dataDir string) {
	if !CheckDebug() {
		return
	}

	Debug = true
	logPath := filepath.Join(dataDir, "debug.log")

	// Create debug log with secure permissions (0600 - may contain conversation text)
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (WILLPRO_DEBUG=%s) ===", os.Getenv("WILLPRO_DEBUG"))
	DebugLog.Printf("Log path: %s", logPath)
}

func HasAllEnvVars() bool {
	return os.Getenv("WILLPRO_API_KEY") != "" &&
		os.Getenv("WILLPRO_MODEL") != "" &&
		os.Getenv("WILLPRO_DATA_DIR") != ""
}

func HasAnyEnvVar() bool {
	return os.Getenv("WILLPRO_API_KEY") != "" ||
		os.Getenv("WILLPRO_MODEL") != "" ||
		os.Getenv("WILLPRO_DATA_DIR") != ""
}

func GetMissingEnvVar() string {
	if os.Getenv("WILLPRO_API_KEY") == "" {
		return "WILLPRO_API_KEY"
	}
	if os.Getenv("WILLPRO_MODEL") == "" {
		return "WILLPRO_MODEL"
	}
	if os.Getenv("WILLPRO_DATA_DIR") == "" {
		return "WILLPRO_DATA_DIR"
	}
	return ""
}

func Load() (*Config, error) {
	cfg := &Config{
		DataDirectory:     GetDefaultDataDir(),
		DefaultProvider:   "openrouter",
		OpenRouterBaseURL: "https://openrouter.ai/api/v1",
		DefaultModel:      "openai/gpt-oss-20b:free",
		OllamaHost:        "http://localhost:11434",
	}

	if HasAllEnvVars() {
		cfg.applyEnvOverrides()
	} else {
		systemCfg, err := LoadSystemConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load system config: %w", err)
		}
		cfg.DataDirectory = systemCfg.DataDirectory

		dataDir := cfg.DataDir()
		userCfg, err := LoadUserConfig(dataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load user config: %w", err)
		}
		if userCfg.DefaultProvider != "" {
			cfg.DefaultProvider = userCfg.DefaultProvider
		}
		if userCfg.OpenRouter.BaseURL != "" {
			cfg.OpenRouterBaseURL = userCfg.OpenRouter.BaseURL
		}
		cfg.OpenRouterAPIKey = userCfg.OpenRouter.APIKey
		if userCfg.OpenRouter.DefaultModel != "" {
			cfg.DefaultModel = userCfg.OpenRouter.DefaultModel
		}
		cfg.AnthropicBaseURL = userCfg.Anthropic.BaseURL
		cfg.AnthropicAPIKey = userCfg.Anthropic.APIKey
		if userCfg.Ollama.Host != "" {
			cfg.OllamaHost = userCfg.Ollama.Host
		}
	}

	dataDir := cfg.DataDir()
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := EnsureDataDirPermissions(dataDir); err != nil {
		return nil, fmt.Errorf("failed to set data directory permissions: %w", err)
	}

	return cfg, nil
}
