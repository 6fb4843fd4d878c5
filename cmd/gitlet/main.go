package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/keshon/gitlet/internal/command"
	_ "github.com/keshon/gitlet/internal/command/all"
	"github.com/keshon/gitlet/internal/config"
)

func main() {
	setupLogging()
	command.RunCLI(os.Args[1:])
}

// setupLogging sends diagnostics to stderr so command output stays clean.
func setupLogging() {
	level := parseLevel(os.Getenv(config.LogLevelEnv))
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
