//go:generate mockgen -source=./dbconn.go -destination=./dbconn_mock.go -package=dbconn Client
package dbconn

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type Client interface {
	Dial(db Database) (Connection, error)
}

type client struct {
	config *Config
}

func New(options ...Option) Client {
	config := defaultConfig()
	for _, option := range options {
		option(config)
	}

	return &client{
		config: config,
	}
}

// Dial opens a single database connection.
//
// Each returned Connection is backed by its own sql.DB pinned to one
// underlying connection, so pooling decisions stay with the caller.
func (c *client) Dial(database Database) (Connection, error) {
	dsn, err := BuildDSN(database)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(database.Driver, dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), c.config.timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &connection{
		db:       db,
		database: database,
	}, nil
}
