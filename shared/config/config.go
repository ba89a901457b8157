package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Library  LibraryConfig  `yaml:"library"`
	AI       AIConfig       `yaml:"ai"`
	Logging  LoggingConfig  `yaml:"logging"`
	Schedule ScheduleConfig `yaml:"schedule"`
}

type ServerConfig struct {
	Port       int    `yaml:"port" env:"PORT"`
	ClientDir  string `yaml:"client_dir"`
	ShellFile  string `yaml:"shell_file"`
	ShellTitle string `yaml:"shell_title"`
}

type LibraryConfig struct {
	VideosFile string `yaml:"videos_file" env:"VIDEOS_FILE"`
}

type AIConfig struct {
	GeminiAPIKey string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Model        string `yaml:"model"`
	IdeaCount    int    `yaml:"idea_count"`
	// BaseURL overrides the Gemini endpoint; empty uses the SDK default.
	BaseURL string `yaml:"base_url"`
}

type LoggingConfig struct {
	Level   string `yaml:"level" env:"LOG_LEVEL"`
	Service string `yaml:"service"`
}

type ScheduleConfig struct {
	// Stats is a cron spec with a seconds field.
	Stats string `yaml:"stats" env:"STATS_SCHEDULE"`
}

// Load reads .env, then the YAML file named by CONFIG_FILE (default
// config.yaml), then applies environment overrides and defaults. A missing
// config file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(configFile)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults + environment only
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("VIDEOS_FILE"); v != "" {
		c.Library.VideosFile = v
	}
	if c.AI.GeminiAPIKey == "" {
		c.AI.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("STATS_SCHEDULE"); v != "" {
		c.Schedule.Stats = v
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3001
	}
	if c.Server.ClientDir == "" {
		c.Server.ClientDir = "dist/client"
	}
	if c.Server.ShellTitle == "" {
		c.Server.ShellTitle = "Video Library"
	}
	if c.Library.VideosFile == "" {
		c.Library.VideosFile = "data/videos.json"
	}
	if c.AI.Model == "" {
		c.AI.Model = "gemini-2.5-flash"
	}
	if c.AI.IdeaCount == 0 {
		c.AI.IdeaCount = 5
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Service == "" {
		c.Logging.Service = "video-library"
	}
	if c.Schedule.Stats == "" {
		c.Schedule.Stats = "0 */15 * * * *" // every 15 minutes
	}
}

// The Gemini key is deliberately not required here: an unconfigured key is
// reported per request by the idea endpoint.
func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.AI.IdeaCount < 1 {
		return fmt.Errorf("ai.idea_count must be positive, got %d", c.AI.IdeaCount)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
