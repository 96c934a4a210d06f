package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio site backend",
	Long: `Serves the portfolio API and keeps imported GitHub projects in sync.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

// newLogger installs a JSON logger on stdout as the process default.
func newLogger(level string) *slog.Logger {
	logLevel := new(slog.LevelVar)
	setLogLevel(level, logLevel)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
	return logger
}

func setLogLevel(level string, v *slog.LevelVar) {
	switch level {
	case "debug":
		v.Set(slog.LevelDebug)
	case "warn":
		v.Set(slog.LevelWarn)
	case "error":
		v.Set(slog.LevelError)
	default:
		v.Set(slog.LevelInfo)
	}
}
