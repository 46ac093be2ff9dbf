package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	app "github.com/rocketscienceinc/inarow/internal"
	"github.com/rocketscienceinc/inarow/internal/config"
)

var (
	configPath = "config.yml"
	boardSize  = 0
	logLevel   = ""
)

func init() {
	pflag.StringVarP(&configPath, "config", "c", configPath, "path to the yaml config, empty to read the environment only")
	pflag.IntVarP(&boardSize, "size", "s", boardSize, "board size, overrides the config")
	pflag.StringVarP(&logLevel, "log-level", "l", logLevel, "debug, info, warn or error, overrides the config")
	pflag.Parse()
}

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	conf := config.MustLoad(configPath)

	if pflag.CommandLine.Changed("size") {
		conf.Board.Size = boardSize
	}

	if logLevel != "" {
		conf.LogLevel = logLevel
	}

	if err := conf.Validate(); err != nil {
		panic(fmt.Errorf("invalid flags: %w", err))
	}

	return conf
}

// initialize logger. Stdout belongs to the board, so logs go to stderr.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
