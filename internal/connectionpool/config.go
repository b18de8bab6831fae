package connectionpool

import (
	"log/slog"

	"github.com/javi11/dbpool/internal/config"
	"github.com/javi11/dbpool/pkg/dbconn"
)

type Config struct {
	pool            config.Pool
	database        config.Database
	log             *slog.Logger
	fakeConnections bool
	cli             dbconn.Client
}

type Option func(*Config)

func defaultConfig() *Config {
	return &Config{
		log:             slog.Default(),
		fakeConnections: false,
	}
}

func WithClient(cli dbconn.Client) Option {
	return func(c *Config) {
		c.cli = cli
	}
}

func WithPool(pool config.Pool) Option {
	return func(c *Config) {
		c.pool = pool
		c.fakeConnections = pool.FakeConnections
	}
}

func WithDatabase(database config.Database) Option {
	return func(c *Config) {
		c.database = database
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Config) {
		c.log = log
	}
}

func WithFakeConnections(fakeConnections bool) Option {
	return func(c *Config) {
		c.fakeConnections = fakeConnections
	}
}
