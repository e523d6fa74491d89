package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Session      SessionConfig      `yaml:"session"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	Notification NotificationConfig `yaml:"notification"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	Environment string `yaml:"environment"` // development | production
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type SessionConfig struct {
	TTLHours int `yaml:"ttl_hours"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

type NotificationConfig struct {
	ResendAPIKey string `yaml:"resend_api_key"`
	FromEmail    string `yaml:"from_email"`
	FromName     string `yaml:"from_name"`
}

var GlobalConfig Config

func LoadConfig(path string) error {
	// Start from defaults so a missing file still yields a runnable config.
	GlobalConfig = Config{
		Server:   ServerConfig{Port: 3455, Environment: "development"},
		Database: DatabaseConfig{Path: "notego.db"},
		Session:  SessionConfig{TTLHours: 1},
		Log:      LogConfig{Level: "info"},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, we might still be okay with defaults/env vars
		if !os.IsNotExist(err) {
			return err
		}
	} else {
		if err := yaml.Unmarshal(data, &GlobalConfig); err != nil {
			return err
		}
	}

	// Environment variable overrides
	if port := os.Getenv("PORT"); port != "" {
		var p int
		fmt.Sscanf(port, "%d", &p)
		if p != 0 {
			GlobalConfig.Server.Port = p
		}
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		GlobalConfig.Server.Environment = env
	}
	if path := os.Getenv("DATABASE_PATH"); path != "" {
		GlobalConfig.Database.Path = path
	}
	if ttl := os.Getenv("SESSION_TTL_HOURS"); ttl != "" {
		var h int
		fmt.Sscanf(ttl, "%d", &h)
		if h != 0 {
			GlobalConfig.Session.TTLHours = h
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		GlobalConfig.Log.Level = level
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		parts := strings.Split(origins, ",")
		GlobalConfig.CORS.Origins = GlobalConfig.CORS.Origins[:0]
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				GlobalConfig.CORS.Origins = append(GlobalConfig.CORS.Origins, p)
			}
		}
	}
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		GlobalConfig.Notification.ResendAPIKey = apiKey
	}

	if GlobalConfig.Session.TTLHours <= 0 {
		GlobalConfig.Session.TTLHours = 1
	}

	return nil
}

// SessionTTL returns the configured session lifetime.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLHours) * time.Hour
}

// IsProduction gates cookie Secure flags and error verbosity.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
