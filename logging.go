package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogging configures the global logger based on CLI flags.
func setupLogging(cli *CLI) zerolog.Logger {
	color := cli.Color || isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	logger := newLogger(cli, os.Stderr, color)

	// Set the global logger instance used by log.Debug(), log.Info(), etc.
	log.Logger = logger

	return logger
}

func newLogger(cli *CLI, out io.Writer, color bool) zerolog.Logger {
	logLevel := zerolog.InfoLevel
	if cli.Debug {
		logLevel = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(logLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs // Use milliseconds for timestamp

	var logger zerolog.Logger
	if cli.LogJSON {
		logger = zerolog.New(out)
	} else {
		// Pretty console logging
		output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		output.NoColor = !color

		logger = zerolog.New(output)
	}
	return logger.With().Timestamp().Logger()
}
