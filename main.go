package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fingon/go-textsanitize/sanitizer"
)

// CLI holds the command-line arguments
type CLI struct {
	// Character sets come from --platform or the config file. Flags take precedence.
	ConfigFile string `kong:"name='config',type='path',default='~/.config/textsanitize/config.json',help='Path to a JSON file with platform and custom invalid characters. Default: ~/.config/textsanitize/config.json',group='Character sets'"`
	Platform   string `kong:"name='platform',help='Platform whose invalid characters apply (host, unix, windows). Default: host',group='Character sets'"`

	// Other options
	Debug   bool `kong:"name='debug',help='Enable debug logging.'"`
	LogJSON bool `kong:"name='log-json',help='Output logs in JSON format.'"`
	Color   bool `kong:"name='log-color',help='Color logs.'"`

	Clean   CleanCmd   `kong:"cmd,help='Remove characters that are invalid in paths and file names.'"`
	Replace ReplaceCmd `kong:"cmd,help='Replace the first or last occurrence of a string.'"`
	Scan    ScanCmd    `kong:"cmd,help='List characters that do not match a pattern.'"`
}

// App is bound into every command's Run method.
type App struct {
	In        io.Reader
	Out       io.Writer
	Sanitizer *sanitizer.Sanitizer
	Logger    zerolog.Logger
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("textsanitize"),
		kong.Description("Strip invalid path characters, replace single occurrences and find non-matching characters."),
		kong.UsageOnError(),
	)

	logger := setupLogging(&cli)

	// Load and validate configuration
	sets, err := loadAndValidateConfig(&cli, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Configuration error")
		kctx.Exit(1) // Although Fatal should exit, call this for consistency
	}
	logger.Debug().
		Str("platform", cli.Platform).
		Stringer("invalid_path_chars", sets.Path).
		Stringer("invalid_file_name_chars", sets.FileName).
		Msg("Configuration")

	app := &App{
		In:        os.Stdin,
		Out:       os.Stdout,
		Sanitizer: sanitizer.New(sets, sanitizer.WithLogger(logger)),
		Logger:    logger,
	}
	err = kctx.Run(app)
	kctx.FatalIfErrorf(err)
}
