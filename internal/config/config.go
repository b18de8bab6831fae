package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v2"
)

type Config struct {
	LogPath  string   `yaml:"log_path" default:"/config/activity.log"`
	Pool     Pool     `yaml:"pool"`
	Database Database `yaml:"database"`
	Debug    bool     `yaml:"debug" default:"false"`
}

type Pool struct {
	MinConnections       int  `yaml:"min_connections"`
	MaxConnections       int  `yaml:"max_connections"`
	IdleTimeoutInSeconds int  `yaml:"idle_timeout_in_seconds"`
	ReplenishOnSweep     bool `yaml:"replenish_on_sweep" default:"false"`
	FakeConnections      bool `yaml:"fake_connections" default:"false"`
}

type Database struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password" json:"-"`
	TLS      bool   `yaml:"tls" default:"false"`
}

func FromFile(path string) (*Config, error) {
	configData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse the config file
	var config Config
	err = yaml.Unmarshal(configData, &config)
	if err != nil {
		return nil, err
	}

	if config.Pool.MinConnections <= 0 {
		return nil, fmt.Errorf("min_connections must be greater than 0")
	}

	if config.Pool.MaxConnections < config.Pool.MinConnections {
		return nil, fmt.Errorf("max_connections must be greater than or equal to min_connections")
	}

	if config.Pool.IdleTimeoutInSeconds <= 0 {
		return nil, fmt.Errorf("idle_timeout_in_seconds must be greater than 0")
	}

	if config.Database.Driver == "" {
		return nil, fmt.Errorf("database driver is required")
	}

	err = defaults.Set(&config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}
