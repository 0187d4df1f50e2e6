package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string            `mapstructure:"environment" yaml:"environment"`
	Server       ServerConfig      `mapstructure:"server" yaml:"server"`
	Database     DatabaseConfig    `mapstructure:"database" yaml:"database"`
	Inference    InferenceConfig   `mapstructure:"inference" yaml:"inference"`
	Translation  TranslationConfig `mapstructure:"translation" yaml:"translation"`
	Breaker      BreakerConfig     `mapstructure:"breaker" yaml:"breaker"`
	Workspace    WorkspaceConfig   `mapstructure:"workspace" yaml:"workspace"`
	History      HistoryConfig     `mapstructure:"history" yaml:"history"`
	Auth         AuthConfig        `mapstructure:"auth" yaml:"auth"`
	Hanzi        HanziConfig       `mapstructure:"hanzi" yaml:"hanzi"`
	Cache        CacheConfig       `mapstructure:"cache" yaml:"cache"`
	RateLimiting RateLimitConfig   `mapstructure:"rate_limiting" yaml:"rate_limiting"`
	Security     SecurityConfig    `mapstructure:"security" yaml:"security"`
	Logging      LoggingConfig     `mapstructure:"logging" yaml:"logging"`
	Monitoring   MonitoringConfig  `mapstructure:"monitoring" yaml:"monitoring"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host" yaml:"host"`
	Port            int           `mapstructure:"port" yaml:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes" yaml:"max_header_bytes"`
	MaxRequestBytes int64         `mapstructure:"max_request_bytes" yaml:"max_request_bytes"`
}

// DatabaseConfig contains history store settings
type DatabaseConfig struct {
	Path                  string        `mapstructure:"path" yaml:"path"`
	MaxConnections        int           `mapstructure:"max_connections" yaml:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections" yaml:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime" yaml:"connection_max_lifetime"`
	Verbose               bool          `mapstructure:"verbose" yaml:"verbose"`
}

// InferenceConfig points at the tokenize/NER/punctuation backend
type InferenceConfig struct {
	URL     string        `mapstructure:"url" yaml:"url"`
	APIKey  string        `mapstructure:"api_key" yaml:"api_key"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// TranslationConfig points at the OpenAI-compatible translation server
type TranslationConfig struct {
	URL              string        `mapstructure:"url" yaml:"url"`
	APIKey           string        `mapstructure:"api_key" yaml:"api_key"`
	Model            string        `mapstructure:"model" yaml:"model"`
	SystemPrompt     string        `mapstructure:"system_prompt" yaml:"system_prompt"`
	Temperature      float64       `mapstructure:"temperature" yaml:"temperature"`
	Seed             int           `mapstructure:"seed" yaml:"seed"`
	FrequencyPenalty float64       `mapstructure:"frequency_penalty" yaml:"frequency_penalty"`
	Timeout          time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// BreakerConfig tunes the circuit breakers guarding backend calls
type BreakerConfig struct {
	MaxRequests      uint32        `mapstructure:"max_requests" yaml:"max_requests"`
	Interval         time.Duration `mapstructure:"interval" yaml:"interval"`
	Timeout          time.Duration `mapstructure:"timeout" yaml:"timeout"`
	FailureThreshold uint32        `mapstructure:"failure_threshold" yaml:"failure_threshold"`
}

// WorkspaceConfig contains task limits
type WorkspaceConfig struct {
	MaxTokens int `mapstructure:"max_tokens" yaml:"max_tokens"`
}

// HistoryConfig contains retention settings for input-only records.
// A zero InputRetention or CleanupInterval disables the purge.
type HistoryConfig struct {
	InputRetention  time.Duration `mapstructure:"input_retention" yaml:"input_retention"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" yaml:"cleanup_interval"`
}

// AuthConfig contains session token settings
type AuthConfig struct {
	JWTSecret      string `mapstructure:"jwt_secret" yaml:"jwt_secret"`
	AdminRole      string `mapstructure:"admin_role" yaml:"admin_role"`
	DevAuthEnabled bool   `mapstructure:"dev_auth_enabled" yaml:"dev_auth_enabled"`
	DevAuthToken   string `mapstructure:"dev_auth_token" yaml:"dev_auth_token"`
	DevUserID      string `mapstructure:"dev_user_id" yaml:"dev_user_id"`
}

// HanziConfig contains character dictionary settings
type HanziConfig struct {
	DictionaryPath string `mapstructure:"dictionary_path" yaml:"dictionary_path"`
}

// CacheConfig contains in-memory cache settings
type CacheConfig struct {
	MaxSizeMB   int64         `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	TokenizeTTL time.Duration `mapstructure:"tokenize_ttl" yaml:"tokenize_ttl"`
	HanziTTL    time.Duration `mapstructure:"hanzi_ttl" yaml:"hanzi_ttl"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled" yaml:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	Burst             int     `mapstructure:"burst" yaml:"burst"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors" yaml:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// MonitoringConfig contains monitoring settings
type MonitoringConfig struct {
	Enabled     bool   `mapstructure:"enabled" yaml:"enabled"`
	MetricsPath string `mapstructure:"metrics_path" yaml:"metrics_path"`
}

// Redacted returns a copy with secrets masked, for display.
func (c Config) Redacted() Config {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return "********"
	}
	c.Inference.APIKey = mask(c.Inference.APIKey)
	c.Translation.APIKey = mask(c.Translation.APIKey)
	c.Auth.JWTSecret = mask(c.Auth.JWTSecret)
	c.Auth.DevAuthToken = mask(c.Auth.DevAuthToken)
	return c
}
