package dbconn

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildDSN(t *testing.T) {
	t.Run("sqlite uses the database name as path", func(t *testing.T) {
		dsn, err := BuildDSN(Database{
			Driver: DriverSqlite,
			Name:   "/config/dbpool.db",
		})
		assert.NoError(t, err)
		assert.Equal(t, "/config/dbpool.db", dsn)
	})

	t.Run("sqlite without a name fails", func(t *testing.T) {
		_, err := BuildDSN(Database{Driver: DriverSqlite})
		assert.Error(t, err)
	})

	t.Run("mysql builds a tcp dsn", func(t *testing.T) {
		dsn, err := BuildDSN(Database{
			Driver:   DriverMysql,
			Host:     "localhost",
			Port:     3306,
			Name:     "pool",
			Username: "user",
			Password: "pass",
		})
		assert.NoError(t, err)
		assert.Contains(t, dsn, "user:pass@tcp(localhost:3306)/pool")
	})

	t.Run("mysql with tls enables the tls param", func(t *testing.T) {
		dsn, err := BuildDSN(Database{
			Driver:   DriverMysql,
			Host:     "localhost",
			Port:     3306,
			Name:     "pool",
			Username: "user",
			Password: "pass",
			TLS:      true,
		})
		assert.NoError(t, err)
		assert.Contains(t, dsn, "tls=true")
	})

	t.Run("unknown driver fails", func(t *testing.T) {
		_, err := BuildDSN(Database{Driver: "oracle"})
		assert.Error(t, err)
	})
}

func TestDial(t *testing.T) {
	t.Run("dials an in memory sqlite database", func(t *testing.T) {
		cli := New(WithTimeout(time.Second))

		conn, err := cli.Dial(Database{
			Driver: DriverSqlite,
			Name:   ":memory:",
		})
		assert.NoError(t, err)
		defer conn.Close()

		assert.NoError(t, conn.Ping(context.Background()))
		assert.Equal(t, DriverSqlite, conn.Database().Driver)
	})

	t.Run("invalid driver fails before opening", func(t *testing.T) {
		cli := New()

		_, err := cli.Dial(Database{Driver: "oracle"})
		assert.Error(t, err)
	})
}

func TestFakeConnection(t *testing.T) {
	conn := NewFakeConnection(Database{Driver: DriverSqlite, Name: "fake"})

	assert.NoError(t, conn.Ping(context.Background()))
	assert.Equal(t, "fake", conn.Database().Name)
	assert.NoError(t, conn.Close())
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, IsRetryableError(syscall.ECONNRESET))
	assert.True(t, IsRetryableError(syscall.ETIMEDOUT))
	assert.False(t, IsRetryableError(assert.AnError))
}
