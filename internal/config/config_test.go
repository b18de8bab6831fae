package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(content), 0600)
	assert.NoError(t, err)

	return path
}

func TestFromFile(t *testing.T) {
	t.Run("loads a valid config and applies defaults", func(t *testing.T) {
		path := writeConfig(t, `
pool:
  min_connections: 5
  max_connections: 20
  idle_timeout_in_seconds: 300
database:
  driver: sqlite3
  name: /config/pool.db
`)

		config, err := FromFile(path)
		assert.NoError(t, err)

		assert.Equal(t, 5, config.Pool.MinConnections)
		assert.Equal(t, 20, config.Pool.MaxConnections)
		assert.Equal(t, 300, config.Pool.IdleTimeoutInSeconds)
		assert.False(t, config.Pool.ReplenishOnSweep)
		assert.Equal(t, "/config/activity.log", config.LogPath)
	})

	t.Run("fails when the file does not exist", func(t *testing.T) {
		_, err := FromFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("fails when min_connections is not positive", func(t *testing.T) {
		path := writeConfig(t, `
pool:
  min_connections: 0
  max_connections: 20
  idle_timeout_in_seconds: 300
database:
  driver: sqlite3
`)

		_, err := FromFile(path)
		assert.ErrorContains(t, err, "min_connections")
	})

	t.Run("fails when max_connections is below min_connections", func(t *testing.T) {
		path := writeConfig(t, `
pool:
  min_connections: 10
  max_connections: 5
  idle_timeout_in_seconds: 300
database:
  driver: sqlite3
`)

		_, err := FromFile(path)
		assert.ErrorContains(t, err, "max_connections")
	})

	t.Run("fails when idle_timeout_in_seconds is not positive", func(t *testing.T) {
		path := writeConfig(t, `
pool:
  min_connections: 5
  max_connections: 20
  idle_timeout_in_seconds: 0
database:
  driver: sqlite3
`)

		_, err := FromFile(path)
		assert.ErrorContains(t, err, "idle_timeout_in_seconds")
	})

	t.Run("fails when the database driver is missing", func(t *testing.T) {
		path := writeConfig(t, `
pool:
  min_connections: 5
  max_connections: 20
  idle_timeout_in_seconds: 300
`)

		_, err := FromFile(path)
		assert.ErrorContains(t, err, "driver")
	})
}
