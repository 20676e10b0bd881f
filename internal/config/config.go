// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Supported completion providers.
const (
	ProviderGroq      = "groq"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// ErrMissingAPIKey is returned when the selected provider has no credential.
var ErrMissingAPIKey = errors.New("missing completion API key")

// Config holds the relay service configuration.
type Config struct {
	Port           string `env:"PORT"                 env-default:"3001"`
	AllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	LLM            LLMConfig
	Log            LogConfig
}

// LLMConfig selects and authenticates the completion provider.
type LLMConfig struct {
	Provider        string `env:"LLM_PROVIDER"      env-default:"groq"`
	Model           string `env:"LLM_MODEL"`
	GroqAPIKey      string `env:"GROQ_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

// ClientConfig holds the journal client configuration.
type ClientConfig struct {
	RelayURL string `env:"MOODSENSE_RELAY_URL" env-default:"http://localhost:3001"`
	DBPath   string `env:"MOODSENSE_DB_PATH"   env-default:"./data/moodsense.db"`
	Log      LogConfig
}

// Load reads relay configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	switch c.LLM.Provider {
	case ProviderGroq, ProviderAnthropic, ProviderGemini:
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider)
	}
	if c.LLM.APIKey() == "" {
		return fmt.Errorf("%w: set %s", ErrMissingAPIKey, c.LLM.APIKeyEnv())
	}
	return nil
}

// APIKey returns the credential of the selected provider.
func (l LLMConfig) APIKey() string {
	switch l.Provider {
	case ProviderAnthropic:
		return l.AnthropicAPIKey
	case ProviderGemini:
		return l.GeminiAPIKey
	default:
		return l.GroqAPIKey
	}
}

// APIKeyEnv names the environment variable holding the selected provider's credential.
func (l LLMConfig) APIKeyEnv() string {
	switch l.Provider {
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return "GROQ_API_KEY"
	}
}

// AllowedOriginList splits the comma-separated CORS origins.
func (c *Config) AllowedOriginList() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// LoadClient reads journal client configuration from environment variables.
func LoadClient() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if cfg.RelayURL == "" {
		return nil, fmt.Errorf("invalid configuration: MOODSENSE_RELAY_URL cannot be empty")
	}
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("invalid configuration: MOODSENSE_DB_PATH cannot be empty")
	}
	cfg.RelayURL = strings.TrimRight(cfg.RelayURL, "/")
	return &cfg, nil
}
