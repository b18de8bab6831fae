package monitor

import (
	"log/slog"
	"time"
)

type Config struct {
	interval time.Duration
	log      *slog.Logger
}

type Option func(*Config)

func defaultConfig() *Config {
	return &Config{
		interval: time.Duration(30) * time.Second,
		log:      slog.Default(),
	}
}

func WithInterval(interval time.Duration) Option {
	return func(c *Config) {
		c.interval = interval
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Config) {
		c.log = log
	}
}
