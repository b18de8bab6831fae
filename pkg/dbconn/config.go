package dbconn

import (
	"time"
)

type Config struct {
	timeout time.Duration
}

type Option func(*Config)

func defaultConfig() *Config {
	return &Config{
		timeout: time.Duration(5) * time.Second,
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.timeout = timeout
	}
}
