package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	nexusbounded "gitlab.com/navyx/nexus/bounded"
)

func main() {
	// Load environment variables from .env file if exists
	if _, err := os.Stat(".env"); err == nil {
		godotenv.Load(".env")
	}

	logger := initLogger()
	app := &App{logger: logger, out: os.Stdout}
	app.Run(os.Args[1:])
}

func initLogger() *slog.Logger {
	level := parseLogLevel(os.Getenv("LOG_LEVEL"))

	// Logs go to stderr; stdout carries the step records.
	var logger *slog.Logger
	if os.Getenv("DEV") != "" {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	} else {
		opts := slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: unixTimestampHandler,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &opts)).With(
			"service", nexusbounded.ServiceName,
			"version", nexusbounded.GetVersion(),
		)
	}

	slog.SetDefault(logger)

	return logger
}

// parseLogLevel defaults to info.
func parseLogLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func unixTimestampHandler(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Int64("ts", a.Value.Time().UnixNano()/1e6) // millisecond precision
	}
	return a
}
