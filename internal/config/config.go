// Package config loads the settings of the linguist tool from an optional
// .env file, an optional YAML file and LINGUIST_* environment variables, in
// that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LINGUIST_"

type Config struct {
	Translations Translations `yaml:"translations"`
	Log          Log          `yaml:"log"`
}

type Translations struct {
	// Dir holds the <domain>-<locale>.ts catalogs.
	Dir            string   `yaml:"dir" env:"DIR"`
	Domain         string   `yaml:"domain" env:"DOMAIN"`
	DefaultLocale  string   `yaml:"default_locale" env:"DEFAULT_LOCALE"`
	SourceLanguage string   `yaml:"source_language" env:"SOURCE_LANGUAGE"`
	Preload        []string `yaml:"preload" env:"PRELOAD" envSeparator:","`
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

func defaults() *Config {
	return &Config{
		Translations: Translations{
			Dir:            "translations",
			Domain:         "harbour-whisperfish",
			DefaultLocale:  "en",
			SourceLanguage: "en",
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load returns the configuration. path names an optional YAML file; an
// empty path or a missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: cannot read .env: %w", err)
	}

	cfg := defaults()
	if err := cfg.readYAML(path); err != nil {
		return nil, err
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) readYAML(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().
			Str("path", path).
			Msg("No YAML configuration file found, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: cannot read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: cannot parse YAML from %s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Msg("Loaded configuration")
	return nil
}

func (cfg *Config) validate() error {
	if strings.TrimSpace(cfg.Translations.Domain) == "" {
		return errors.New("config: translations.domain must not be empty")
	}
	if strings.ContainsAny(cfg.Translations.Domain, `/\`) {
		return fmt.Errorf("config: translations.domain %q must not contain a path separator", cfg.Translations.Domain)
	}
	if strings.TrimSpace(cfg.Translations.SourceLanguage) == "" {
		return errors.New("config: translations.source_language must not be empty")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", cfg.Log.Format)
	}
	return nil
}
