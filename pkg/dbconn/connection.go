//go:generate mockgen -source=./connection.go -destination=./connection_mock.go -package=dbconn Connection
package dbconn

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/go-sql-driver/mysql"
)

const (
	DriverSqlite = "sqlite3"
	DriverMysql  = "mysql"
)

type Database struct {
	Driver   string
	Host     string
	Port     int
	Name     string
	Username string
	Password string
	TLS      bool
}

type Connection interface {
	io.Closer
	Ping(ctx context.Context) error
	Database() Database
}

type connection struct {
	db       *sql.DB
	database Database
}

func (c *connection) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *connection) Close() error {
	return c.db.Close()
}

func (c *connection) Database() Database {
	return c.database
}

// BuildDSN translates a Database into the driver specific data source name.
func BuildDSN(db Database) (string, error) {
	switch db.Driver {
	case DriverSqlite:
		if db.Name == "" {
			return "", fmt.Errorf("sqlite database name is required")
		}

		return db.Name, nil
	case DriverMysql:
		cfg := mysql.NewConfig()
		cfg.User = db.Username
		cfg.Passwd = db.Password
		cfg.Net = "tcp"
		cfg.Addr = fmt.Sprintf("%s:%d", db.Host, db.Port)
		cfg.DBName = db.Name

		if db.TLS {
			cfg.TLSConfig = "true"
		}

		return cfg.FormatDSN(), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", db.Driver)
	}
}
