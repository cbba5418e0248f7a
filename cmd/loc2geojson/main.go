package main

import (
	"os"

	"github.com/woozymasta/loc2geojson/internal/config"
	"github.com/woozymasta/loc2geojson/internal/logger"
	"github.com/woozymasta/loc2geojson/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE"   description:"Path to optional YAML configuration file"`
	Input      string `short:"i" long:"input"  env:"INPUT_PATH"    description:"Input JSON array of location records, '-' for stdin (default: ./test.json)"`
	Output     string `short:"o" long:"output" env:"OUTPUT_PATH"   description:"Output GeoJSON path, '-' for stdout (default: ./geodata.geojson)"`
	Format     string `short:"f" long:"format" env:"OUTPUT_FORMAT" description:"Output format (default: json)" choice:"json" choice:"yaml"`
	Pretty     bool   `short:"p" long:"pretty" description:"Indent output"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command and returns the process exit code.
func run(args []string) int {
	// .env must be loaded before flags read the environment
	envErr := config.LoadDotEnv()

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 1
	}

	opts.Logger.Setup()

	if envErr != nil {
		log.Warn().Err(envErr).Msg("Failed to load .env file")
	}

	var file *config.Config
	if opts.ConfigFile != "" {
		var err error
		file, err = config.Load(opts.ConfigFile)
		if err != nil {
			log.Error().Err(err).Str("path", opts.ConfigFile).Msg("Failed to load configuration")
			return 1
		}
	}

	cfg := file.Merge(opts.Input, opts.Output, opts.Format, opts.Pretty)
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		return 1
	}

	stats, err := processor.Run(processor.Settings{
		Input:  cfg.Input,
		Output: cfg.Output,
		Format: cfg.Format,
		Pretty: cfg.Pretty,
	})
	if err != nil {
		log.Error().
			Err(err).
			Str("input", cfg.Input).
			Str("output", cfg.Output).
			Msg("Conversion failed")
		return 1
	}

	log.Info().
		Int("records", stats.Total).
		Int("features", stats.Converted).
		Int("skipped", stats.Skipped).
		Str("output", cfg.Output).
		Str("format", cfg.Format).
		Str("content_type", processor.ContentType(cfg.Format)).
		Msg("Successfully converted locations")

	return 0
}
