package client

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the environment-driven client configuration read by
// [LoadConfig]. Every field binds to a CHATLINE_* environment variable.
type Config struct {
	AuthToken  string `mapstructure:"auth_token" validate:"required"`
	Name       string `mapstructure:"name" validate:"required"`
	Avatar     string `mapstructure:"avatar" validate:"omitempty,url"`
	APIBaseURL string `mapstructure:"api_base_url" validate:"required,url"`
}

// LoadConfig reads the client configuration from CHATLINE_AUTH_TOKEN,
// CHATLINE_NAME, CHATLINE_AVATAR, and CHATLINE_API_BASE_URL, applying
// defaults and validating the result.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CHATLINE")
	v.AutomaticEnv()

	for _, key := range []string{"auth_token", "name", "avatar", "api_base_url"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	v.SetDefault("api_base_url", DefaultBaseURL)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// NewFromEnv creates a [Client] from the process environment via
// [LoadConfig]. Options are applied on top of the configured values.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	opts = append([]Option{WithBaseURL(cfg.APIBaseURL)}, opts...)

	c, err := New(cfg.AuthToken, BotIdentity{Name: cfg.Name, Avatar: cfg.Avatar}, opts...)
	if err != nil {
		return nil, err
	}

	c.options.requestLogger.Infof("chatline client configured from environment: bot=%s base=%s", cfg.Name, c.options.baseURL)

	return c, nil
}
