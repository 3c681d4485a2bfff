package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Store backend identifiers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// AI provider identifiers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config holds all configuration for demoday-engine.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (passwords, keys) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	BaseURL  string `yaml:"base_url" env:"BASE_URL" env-default:""` // Auto-derived from Port if empty
	Version  string `yaml:"-"`                                      // Set at load time, not from config

	// Store selects the persistence backend: "memory" or "postgres".
	// The in-memory store needs no external services and suits demos and tests.
	Store string `yaml:"store" env:"STORE_BACKEND" env-default:"memory"`

	// SeedFile optionally replaces the built-in demo dataset with a YAML
	// directory of companies and founders.
	SeedFile string `yaml:"seed_file" env:"SEED_FILE" env-default:""`

	// Database configuration (PostgreSQL, used when store=postgres)
	Database DatabaseConfig `yaml:"database"`

	// AI configuration for the natural-language company search
	AI AIConfig `yaml:"ai"`

	// Auth configuration for the demo credential login
	Auth AuthConfig `yaml:"auth"`
}

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"demoday"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"demoday_engine"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"25"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MigrationsPath string `yaml:"migrations_path" env:"PGMIGRATIONS_PATH" env-default:"migrations"`
}

// AIConfig holds settings for the natural-language filter translator.
// When Provider is empty the AI search degrades to returning the full
// unfiltered company list.
type AIConfig struct {
	Provider string `yaml:"provider" env:"AI_PROVIDER" env-default:""`
	// BaseURL is the OpenAI-compatible endpoint base URL. Ignored by the
	// anthropic provider.
	BaseURL string `yaml:"base_url" env:"AI_BASE_URL" env-default:"https://api.openai.com/v1"`
	Model   string `yaml:"model" env:"AI_MODEL" env-default:""`
	APIKey  string `yaml:"-" env:"AI_API_KEY"` // Secret - not in YAML
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	// TokenSecret signs session JWTs and the session cookie store.
	// Any passphrase works; it must stay stable across restarts.
	TokenSecret string `yaml:"-" env:"AUTH_TOKEN_SECRET" env-default:"demoday-dev-secret"`

	// TokenTTLHours is the lifetime of issued session tokens.
	TokenTTLHours int `yaml:"token_ttl_hours" env:"AUTH_TOKEN_TTL_HOURS" env-default:"12"`
}

// Load reads configuration from config.yaml with environment variable overrides.
// The version parameter is injected at build time and set on the returned Config.
// If config.yaml does not exist, configuration comes from environment variables
// and defaults alone.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Auto-derive BaseURL from Port if not explicitly set
	if cfg.BaseURL == "" {
		cfg.BaseURL = (&url.URL{
			Scheme: "http",
			Host:   "localhost:" + cfg.Port,
		}).String()
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store {
	case StoreMemory, StorePostgres:
	default:
		return fmt.Errorf("unknown store backend %q (want %q or %q)", c.Store, StoreMemory, StorePostgres)
	}

	switch c.AI.Provider {
	case "", ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("unknown AI provider %q (want %q or %q)", c.AI.Provider, ProviderOpenAI, ProviderAnthropic)
	}
	if c.AI.Provider != "" && c.AI.Model == "" {
		return fmt.Errorf("ai.model is required when ai.provider is set")
	}

	return nil
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
