package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Spoonacular SpoonacularConfig `mapstructure:"spoonacular"`
	Search      SearchConfig      `mapstructure:"search"`
	Session     SessionConfig     `mapstructure:"session"`
	Auth        AuthConfig        `mapstructure:"auth"`
	SMTP        SMTPConfig        `mapstructure:"smtp"`
	RateLimit   RateLimitConfig   `mapstructure:"rate_limit"`
	LogLevel    string            `mapstructure:"log_level"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SpoonacularConfig configures the upstream recipe-search API client.
type SpoonacularConfig struct {
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Retries  int           `mapstructure:"retries"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// SearchConfig holds the knobs the source variants disagreed on: page size
// and whether dietary preferences are forwarded to the upstream API.
type SearchConfig struct {
	PageSize       int    `mapstructure:"page_size"`
	ServerSideDiet bool   `mapstructure:"server_side_diet"`
	FetchDetail    bool   `mapstructure:"fetch_detail"`
	DatasetPath    string `mapstructure:"dataset_path"`
}

type SessionConfig struct {
	TTL        time.Duration `mapstructure:"ttl"`
	CookieName string        `mapstructure:"cookie_name"`
}

type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
	PendingTTL time.Duration `mapstructure:"pending_ttl"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	FromName string `mapstructure:"from_name"`
}

type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// Load reads configuration from the environment (and an optional .env file
// already loaded by the caller), applies defaults and validates the result.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Direct bindings for values conventionally set without the prefix.
	v.BindEnv("spoonacular.api_key", "SPOONACULAR_API_KEY")
	v.BindEnv("spoonacular.base_url", "SPOONACULAR_BASE_URL")
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("smtp.host", "SMTP_HOST")
	v.BindEnv("smtp.port", "SMTP_PORT")
	v.BindEnv("smtp.username", "SMTP_USERNAME")
	v.BindEnv("smtp.password", "SMTP_PASSWORD")
	v.BindEnv("smtp.from", "EMAIL_FROM")
	v.BindEnv("smtp.from_name", "EMAIL_FROM_NAME")
	v.BindEnv("log_level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")

	v.SetDefault("database.path", "smartrecipes.db")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("spoonacular.base_url", "https://api.spoonacular.com")
	v.SetDefault("spoonacular.timeout", "10s")
	v.SetDefault("spoonacular.retries", 2)
	v.SetDefault("spoonacular.cache_ttl", "10m")

	// The app variants shipped with page sizes 12, 6 and 8; 12 is the
	// default and stays overridable.
	v.SetDefault("search.page_size", 12)
	v.SetDefault("search.server_side_diet", true)
	v.SetDefault("search.fetch_detail", true)
	v.SetDefault("search.dataset_path", "data/calories.csv")

	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.cookie_name", "sr_session")

	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("auth.pending_ttl", "15m")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests", 60)
	v.SetDefault("rate_limit.window", "1m")

	v.SetDefault("log_level", "info")
}

// Validate checks the settings the service cannot run without.
func Validate(cfg *Config) error {
	if cfg.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}
	if cfg.Spoonacular.APIKey == "" {
		return fmt.Errorf("spoonacular api key is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required")
	}
	if cfg.Search.PageSize <= 0 {
		return fmt.Errorf("invalid search page size")
	}
	if cfg.Spoonacular.Retries < 0 {
		return fmt.Errorf("invalid retry count")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.Requests <= 0 {
		return fmt.Errorf("invalid rate limit request count")
	}
	return nil
}
