package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// SuperMind specifics
	Langflow LangflowConfig
	Web      WebConfig
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

// LangflowConfig points at the Langflow deployment hosting the report flow.
type LangflowConfig struct {
	BaseURL        string
	LangflowID     string
	FlowID         string
	Token          string
	TimeoutSeconds int
	Tweaks         map[string]map[string]any
}

func (c LangflowConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// WebConfig controls the browser-facing surface: CORS and abuse limits.
type WebConfig struct {
	AllowedOrigins  []string
	RateLimitPerMin int
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

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Langflow
	cfg.Langflow.BaseURL = viper.GetString("langflow.base_url")
	cfg.Langflow.LangflowID = viper.GetString("langflow.langflow_id")
	cfg.Langflow.FlowID = viper.GetString("langflow.flow_id")
	cfg.Langflow.Token = viper.GetString("langflow.token")
	cfg.Langflow.TimeoutSeconds = viper.GetInt("langflow.timeout_seconds")
	if token := viper.GetString("langflow_token"); token != "" {
		cfg.Langflow.Token = token
	}
	if baseURL := viper.GetString("langflow_base_url"); baseURL != "" {
		cfg.Langflow.BaseURL = baseURL
	}

	// Flow tweaks are passed through to Langflow untouched, so keep them
	// as loosely-typed maps.
	if viper.IsSet("langflow.tweaks") {
		raw := viper.GetStringMap("langflow.tweaks")
		tweaks := make(map[string]map[string]any, len(raw))
		for component, v := range raw {
			if m, ok := v.(map[string]any); ok {
				tweaks[component] = m
			}
		}
		cfg.Langflow.Tweaks = tweaks
	}

	// Web
	cfg.Web.RateLimitPerMin = viper.GetInt("web.rate_limit_per_min")

	// Split origins since viper might not parse array seamlessly from env
	var origins []string
	if rawOrigins := viper.GetString("web.allowed_origins"); rawOrigins != "" {
		for _, origin := range strings.Split(rawOrigins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	cfg.Web.AllowedOrigins = origins

	if cfg.Langflow.BaseURL == "" || cfg.Langflow.FlowID == "" {
		return nil, fmt.Errorf("langflow.base_url and langflow.flow_id are required - please add a langflow section to config.yaml")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("langflow.timeout_seconds", 60)
	viper.SetDefault("web.rate_limit_per_min", 60)
}
