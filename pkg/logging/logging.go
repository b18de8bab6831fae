package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

// New builds the logger used across the pool: JSON records written to
// stdout and to a size rotated log file.
func New(path string, debug bool) *slog.Logger {
	options := &slog.HandlerOptions{}

	if debug {
		options.Level = slog.LevelDebug
	}

	jsonHandler := slog.NewJSONHandler(
		io.MultiWriter(
			os.Stdout,
			&lumberjack.Logger{
				Filename:   path,
				MaxSize:    5,
				MaxAge:     14,
				MaxBackups: 5,
			}), options)

	return slog.New(jsonHandler)
}
