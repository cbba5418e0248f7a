// Package config handles configuration loading and run settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Built-in defaults used when neither flags, environment nor config file set a value.
const (
	DefaultInput  = "./test.json"
	DefaultOutput = "./geodata.geojson"
	DefaultFormat = "json"
)

// Config represents the optional configuration file structure.
type Config struct {
	Input  string `yaml:"input,omitempty"`
	Output string `yaml:"output,omitempty"`
	Format string `yaml:"format,omitempty"`
	Pretty bool   `yaml:"pretty,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDotEnv loads variables from a .env file in the working directory.
// Variables already set in the environment win. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Merge fills every unset value with the config file value, then with the built-in default.
// A nil config only applies defaults.
func (c *Config) Merge(input, output, format string, pretty bool) Config {
	out := Config{Input: input, Output: output, Format: format, Pretty: pretty}

	if c != nil {
		out.Input = firstNonEmpty(out.Input, c.Input)
		out.Output = firstNonEmpty(out.Output, c.Output)
		out.Format = firstNonEmpty(out.Format, c.Format)
		out.Pretty = out.Pretty || c.Pretty
	}

	out.Input = firstNonEmpty(out.Input, DefaultInput)
	out.Output = firstNonEmpty(out.Output, DefaultOutput)
	out.Format = firstNonEmpty(out.Format, DefaultFormat)

	return out
}

// Validate checks values the config file may carry unchecked.
func (c Config) Validate() error {
	switch c.Format {
	case "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", c.Format)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
