// Package config loads server configuration from environment variables and
// an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration. Every field can be set through a
// HUBSPOT_MCP_* environment variable or a hubspot-mcp.yaml config file.
type Config struct {
	Addr        string `mapstructure:"addr"`         // HUBSPOT_MCP_ADDR, default ":8080"
	BaseURL     string `mapstructure:"base_url"`     // HUBSPOT_MCP_BASE_URL, default HubSpot production
	AccessToken string `mapstructure:"access_token"` // HUBSPOT_MCP_ACCESS_TOKEN, used by the stdio transport
	APIKey      string `mapstructure:"api_key"`      // HUBSPOT_MCP_API_KEY, fallback credential
	AppID       string `mapstructure:"app_id"`       // HUBSPOT_MCP_APP_ID, for webhook subscription listing
	LogLevel    string `mapstructure:"log_level"`    // HUBSPOT_MCP_LOG_LEVEL, default "info"
}

// Load reads configuration with sensible defaults. A missing config file is
// fine; a malformed one is not.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HUBSPOT_MCP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("base_url", "https://api.hubapi.com")
	v.SetDefault("log_level", "info")

	v.SetConfigName("hubspot-mcp")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/hubspot-mcp")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
