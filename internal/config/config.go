package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Storage   StorageConfig   `yaml:"storage"`
	Calendar  CalendarConfig  `yaml:"calendar"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"` // "stdio" or "http"
}

// StorageConfig selects the blob backend holding the check-in collection.
type StorageConfig struct {
	Backend   string `yaml:"backend"` // memory, file, sqlite, redis
	Path      string `yaml:"path"`
	Namespace string `yaml:"namespace"`
	RedisAddr string `yaml:"redis_addr"`
}

type CalendarConfig struct {
	Timezone string `yaml:"timezone"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: "stdio",
		},
		Storage: StorageConfig{
			Backend:   "sqlite",
			Path:      "readycheck.db",
			Namespace: "default",
			RedisAddr: "localhost:6379",
		},
		Calendar: CalendarConfig{
			Timezone: "Local",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("READYCHECK_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("READYCHECK_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("READYCHECK_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid READYCHECK_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("READYCHECK_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if backend := os.Getenv("READYCHECK_STORAGE_BACKEND"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if path := os.Getenv("READYCHECK_STORAGE_PATH"); path != "" {
		cfg.Storage.Path = path
	}
	if ns := os.Getenv("READYCHECK_STORAGE_NAMESPACE"); ns != "" {
		cfg.Storage.Namespace = ns
	}
	if addr := os.Getenv("READYCHECK_REDIS_ADDR"); addr != "" {
		cfg.Storage.RedisAddr = addr
	}
	if tz := os.Getenv("READYCHECK_TIMEZONE"); tz != "" {
		cfg.Calendar.Timezone = tz
	}
	if level := os.Getenv("READYCHECK_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func (c Config) validate() error {
	switch c.Transport.Mode {
	case "stdio", "http":
	default:
		return fmt.Errorf("invalid transport mode %q", c.Transport.Mode)
	}
	switch c.Storage.Backend {
	case "memory", "file", "sqlite", "redis":
	default:
		return fmt.Errorf("invalid storage backend %q", c.Storage.Backend)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the calendar timezone used for same-day checks.
func (c Config) Location() (*time.Location, error) {
	if c.Calendar.Timezone == "" || c.Calendar.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Calendar.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Calendar.Timezone, err)
	}
	return loc, nil
}
