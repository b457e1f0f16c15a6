package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"sentiment-analysis/internal/model"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	LLM       LLMConfig
	Cache     CacheConfig
	Topic     TopicConfig
	Limits    LimitsConfig
	RateLimit RateLimitConfig
	Matcher   MatcherConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LLMConfig holds configuration for the LLM provider abstraction layer.
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	Temperature     float64          `yaml:"temperature"`
	MaxTokens       int              `yaml:"max_tokens"`
	PromptTemplate  string           `yaml:"prompt_template"`
}

// ProviderConfig holds configuration for a single LLM provider.
type ProviderConfig struct {
	Name      string `yaml:"name"`
	Enabled   bool   `yaml:"enabled"`
	Priority  int    `yaml:"priority"`
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Model     string `yaml:"model"`
	Timeout   string `yaml:"timeout"`
	MaxTokens int    `yaml:"max_tokens"`
}

// CacheConfig selects and sizes the result cache backend.
type CacheConfig struct {
	Backend    string // memory or valkey
	TTLSeconds int
	MaxEntries int
	Valkey     ValkeyConfig
}

type ValkeyConfig struct {
	Address  string
	Username string
	Password string
}

// TopicConfig points at the optional topic metadata store.
type TopicConfig struct {
	Enabled         bool
	SQLitePath      string
	CacheEntries    int
	CacheTTLSeconds int
}

// LimitsConfig bounds pipeline concurrency and request lifetime.
type LimitsConfig struct {
	MaxConcurrent  int
	RequestTimeout string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// MatcherConfig overrides the built-in keyword variant table.
type MatcherConfig struct {
	Variants map[string][]string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")
	cfg.LLM.PromptTemplate = viper.GetString("llm.prompt_template")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:      getStringFromMap(providerMap, "name"),
						Enabled:   getBoolFromMap(providerMap, "enabled"),
						Priority:  getIntFromMap(providerMap, "priority"),
						APIKey:    expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:   getStringFromMap(providerMap, "base_url"),
						Model:     getStringFromMap(providerMap, "model"),
						Timeout:   getStringFromMap(providerMap, "timeout"),
						MaxTokens: getIntFromMap(providerMap, "max_tokens"),
					}
					if provider.MaxTokens <= 0 {
						provider.MaxTokens = cfg.LLM.MaxTokens
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if len(cfg.LLM.Providers) == 0 {
		return nil, fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	cfg.Cache.Backend = viper.GetString("cache.backend")
	cfg.Cache.TTLSeconds = viper.GetInt("cache.ttl")
	cfg.Cache.MaxEntries = viper.GetInt("cache.max_entries")
	cfg.Cache.Valkey.Address = viper.GetString("cache.valkey.address")
	cfg.Cache.Valkey.Username = viper.GetString("cache.valkey.username")
	cfg.Cache.Valkey.Password = expandEnvVar(viper.GetString("cache.valkey.password"))

	cfg.Topic.Enabled = viper.GetBool("topic.enabled")
	cfg.Topic.SQLitePath = viper.GetString("topic.sqlite_path")
	cfg.Topic.CacheEntries = viper.GetInt("topic.cache_entries")
	cfg.Topic.CacheTTLSeconds = viper.GetInt("topic.cache_ttl")

	cfg.Limits.MaxConcurrent = viper.GetInt("limits.max_concurrent")
	cfg.Limits.RequestTimeout = viper.GetString("limits.request_timeout")

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	cfg.Matcher.Variants = map[string][]string{}
	if viper.IsSet("matcher.variants") {
		for key, values := range viper.GetStringMapStringSlice("matcher.variants") {
			cfg.Matcher.Variants[key] = values
		}
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "45s")
	viper.SetDefault("llm.temperature", 0.0)
	viper.SetDefault("llm.max_tokens", 500)

	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.ttl", 3600)
	viper.SetDefault("cache.max_entries", 1000)

	viper.SetDefault("topic.enabled", false)
	viper.SetDefault("topic.sqlite_path", "topics.db")
	viper.SetDefault("topic.cache_entries", 1000)
	viper.SetDefault("topic.cache_ttl", 300)

	viper.SetDefault("limits.max_concurrent", 50)
	viper.SetDefault("limits.request_timeout", "60s")

	viper.SetDefault("rate_limit.requests_per_min", 300)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if v := viper.GetString(envVar); v != "" {
			return v
		}
		return os.Getenv(envVar)
	}
	return value
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if v, ok := m[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if v, ok := m[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}
