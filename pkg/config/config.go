package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. HANJA_SERVER_PORT.
const EnvPrefix = "HANJA"

var (
	once    sync.Once
	initErr error
)

// legacyEnv lists the variable names the web front-end deployment already
// uses. They are honored next to the prefixed names.
var legacyEnv = map[string]string{
	"inference.url":       "FASTAPI_URL",
	"inference.api_key":   "FASTAPI_API_KEY",
	"translation.url":     "VLLM_URL",
	"translation.api_key": "VLLM_API_KEY",
}

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		initErr = load()
	})
	return initErr
}

func load() error {
	// .env is optional; variables already set in the environment win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error reading .env: %w", err)
	}

	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	for key, name := range legacyEnv {
		envName := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := viper.BindEnv(key, envName, name); err != nil {
			return fmt.Errorf("binding %s: %w", name, err)
		}
	}

	configPath := filepath.Clean("./config/settings.yaml")
	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// reset clears loaded state so tests can call Init again.
func reset() {
	viper.Reset()
	once = sync.Once{}
	initErr = nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// Set overrides a config value, used by command line flags
func Set(key string, value any) {
	viper.Set(key, value)
}

func isProduction() bool {
	env := viper.GetString("environment")
	return env == "production" || env == "prod"
}

func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetInt("workspace.max_tokens") <= 0 {
		viper.Set("workspace.max_tokens", 512)
	}

	if viper.GetString("inference.url") == "" {
		slog.Warn("no inference backend configured", "key", "inference.url")
	}

	return validateSecrets()
}

var placeholders = []string{
	"YOUR_KEY_HERE",
	"YOUR_SECRET_HERE",
	"YOUR_API_KEY",
	"changeme",
	"CHANGEME",
	"",
}

func isPlaceholder(v string) bool {
	for _, p := range placeholders {
		if v == p {
			return true
		}
	}
	return false
}

// validateSecrets refuses placeholder secrets in production and warns
// everywhere else.
func validateSecrets() error {
	secrets := map[string]string{
		"inference.api_key": "inference API key",
		"auth.jwt_secret":   "JWT secret",
	}
	for key, name := range secrets {
		if !isPlaceholder(viper.GetString(key)) {
			continue
		}
		if isProduction() {
			return fmt.Errorf("invalid %s: cannot use placeholder values in production", name)
		}
		slog.Warn("configuration is using a placeholder value", "key", key)
	}

	if isProduction() && viper.GetBool("auth.dev_auth_enabled") {
		return fmt.Errorf("dev auth cannot be enabled in production")
	}
	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Workspace.MaxTokens <= 0 {
		c.Workspace.MaxTokens = 512
	}
	if c.Translation.Model == "" {
		return fmt.Errorf("translation model is required")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 5*time.Minute)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_request_bytes", 10*1024*1024)

	// Database defaults
	viper.SetDefault("database.path", "./data/hanja.db")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", time.Hour)
	viper.SetDefault("database.verbose", false)

	// Inference backend defaults
	viper.SetDefault("inference.url", "http://localhost:8000")
	viper.SetDefault("inference.api_key", "")
	viper.SetDefault("inference.timeout", 60*time.Second)

	// Translation defaults
	viper.SetDefault("translation.url", "http://localhost:8001")
	viper.SetDefault("translation.api_key", "")
	viper.SetDefault("translation.model", "seyoungsong/Qwen2-7B-HanjaMT-AJD-KLC-AWQ")
	viper.SetDefault("translation.system_prompt", "You are a helpful assistant.")
	viper.SetDefault("translation.temperature", 0.0)
	viper.SetDefault("translation.seed", 42)
	viper.SetDefault("translation.frequency_penalty", 0.4)
	viper.SetDefault("translation.timeout", 5*time.Minute)

	// Circuit breaker defaults
	viper.SetDefault("breaker.max_requests", 1)
	viper.SetDefault("breaker.interval", time.Minute)
	viper.SetDefault("breaker.timeout", 30*time.Second)
	viper.SetDefault("breaker.failure_threshold", 5)

	viper.SetDefault("workspace.max_tokens", 512)

	// History retention defaults
	viper.SetDefault("history.input_retention", 30*24*time.Hour)
	viper.SetDefault("history.cleanup_interval", time.Hour)

	// Auth defaults
	viper.SetDefault("auth.jwt_secret", "")
	viper.SetDefault("auth.admin_role", "admin")
	viper.SetDefault("auth.dev_auth_enabled", false)
	viper.SetDefault("auth.dev_auth_token", "dev-token")
	viper.SetDefault("auth.dev_user_id", "dev-user")

	viper.SetDefault("hanzi.dictionary_path", "")

	// Cache defaults
	viper.SetDefault("cache.max_size_mb", 64)
	viper.SetDefault("cache.tokenize_ttl", 10*time.Minute)
	viper.SetDefault("cache.hanzi_ttl", time.Hour)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.requests_per_second", 10.0)
	viper.SetDefault("rate_limiting.burst", 20)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_path", "/metrics")
}
