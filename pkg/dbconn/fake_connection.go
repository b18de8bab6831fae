package dbconn

import (
	"context"
)

type fakeConnection struct {
	database Database
	closed   bool
}

func NewFakeConnection(database Database) Connection {
	return &fakeConnection{
		database: database,
	}
}

func (c *fakeConnection) Ping(ctx context.Context) error {
	return nil
}

func (c *fakeConnection) Close() error {
	c.closed = true
	return nil
}

func (c *fakeConnection) Database() Database {
	return c.database
}
