package config

func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		DataDirectory: GetDefaultDataDir(),
	}
}

func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		DefaultProvider: "openrouter",
		OpenRouter: OpenRouterConfig{
			BaseURL:      "https://openrouter.ai/api/v1",
			DefaultModel: "openai/gpt-oss-20b:free",
		},
		Ollama: OllamaConfig{
			Host: "http://localhost:11434",
		},
	}
}

func GenerateSystemConfigTemplate() string {
	return `# Will Pro System Configuration
# Location: ~/.config/willpro/settings.toml
# This file uses TOML format: https://toml.io

# Directory where conversations and user config are stored
data_directory = "~/.local/share/willpro"
`
}

func GenerateUserConfigTemplate() string {
	return `# Will Pro User Configuration
# Location: <data_directory>/config.toml
# This file uses TOML format: https://toml.io

# Completion backend: "openrouter" (default), "anthropic" or "ollama"
default_provider = "openrouter"

[openrouter]
# OpenRouter API base URL
base_url = "https://openrouter.ai/api/v1"

# API key (WILLPRO_API_KEY overrides this)
api_key = ""

# Default model for new conversations
default_model = "openai/gpt-oss-20b:free"

[anthropic]
# Only needed when default_provider = "anthropic"
base_url = ""
api_key = ""

[ollama]
# Only needed when default_provider = "ollama"
host = "http://localhost:11434"
`
}
