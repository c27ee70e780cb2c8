package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Upstream  UpstreamConfig  `mapstructure:"upstream"`
	Session   SessionConfig   `mapstructure:"session"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Messaging MessagingConfig `mapstructure:"messaging"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port" envconfig:"SERVER_PORT"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
}

type UpstreamConfig struct {
	BaseURL string        `mapstructure:"base_url" envconfig:"UPSTREAM_BASE_URL"`
	Timeout time.Duration `mapstructure:"timeout" envconfig:"UPSTREAM_TIMEOUT"`
}

type SessionConfig struct {
	Secret string        `mapstructure:"secret" envconfig:"SESSION_SECRET"`
	TTL    time.Duration `mapstructure:"ttl" envconfig:"SESSION_TTL"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl" envconfig:"CACHE_TTL"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" envconfig:"RATE_LIMIT_RPS"`
	Burst int     `mapstructure:"burst" envconfig:"RATE_LIMIT_BURST"`
}

// MessagingConfig feeds the message templates and the sanitizer table.
type MessagingConfig struct {
	ClinicName    string            `mapstructure:"clinic_name" envconfig:"MESSAGING_CLINIC_NAME"`
	SenderName    string            `mapstructure:"sender_name" envconfig:"MESSAGING_SENDER_NAME"`
	Substitutions map[string]string `mapstructure:"substitutions"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" envconfig:"LOG_LEVEL"`
	Pretty bool   `mapstructure:"pretty" envconfig:"LOG_PRETTY"`
}

// Load reads config.yaml and overlays DASHBOARD_* environment variables.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("dashboard", &cfg); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	if cfg.Upstream.BaseURL == "" {
		return nil, fmt.Errorf("upstream base URL is required")
	}
	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("session secret is required")
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "10s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("upstream.timeout", "15s")
	viper.SetDefault("session.ttl", "12h")
	viper.SetDefault("cache.ttl", "12h")
	viper.SetDefault("rate_limit.rps", 20.0)
	viper.SetDefault("rate_limit.burst", 40)
	viper.SetDefault("messaging.clinic_name", "Altika Studio Dental")
	viper.SetDefault("messaging.sender_name", "Juliana")
	viper.SetDefault("log.level", "info")
}
