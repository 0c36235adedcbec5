package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/whisperfish/go-linguist"
	"github.com/whisperfish/go-linguist/internal/config"
)

var (
	Stdout io.Writer = os.Stdout
	Stderr *os.File  = os.Stderr
)

type options struct {
	Config string `short:"c" long:"config" value-name:"FILE" description:"read settings from the YAML file FILE"`

	LogLevel string `long:"log-level" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"override the configured log level"`

	LogFormat string `long:"log-format" choice:"console" choice:"json" description:"override the configured log format"`
}

var opts options

func newParser() *flags.Parser {
	opts = options{}
	parser := flags.NewParser(&opts, flags.Default)
	parser.AddCommand("lookup", "Translate a message id", "Resolve a message id over the locale fallback chain and print the result.", &lookupCommand{})
	parser.AddCommand("check", "Validate catalogs", "Parse catalogs and report schema violations.", &checkCommand{})
	parser.AddCommand("stats", "Report translation progress", "Count unfinished entries per language and print the badge URLs.", &statsCommand{})
	parser.AddCommand("pack", "Compress a catalog", "Write a catalog as a zstd blob.", &packCommand{})
	parser.AddCommand("export", "Export a catalog to go-i18n", "Write the translated entries of a catalog as a go-i18n TOML file.", &exportCommand{})
	return parser
}

// setup loads the configuration and the logger shared by all commands.
func setup() (*config.Config, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	linguist.SetLogger(cfg.SetupLogging(Stderr))
	return cfg, nil
}

// localeFromPath returns the locale encoded in a <domain>-<locale>.ts file
// name, or "" when the name does not follow that pattern.
func localeFromPath(path, domain string) string {
	name := strings.TrimSuffix(filepath.Base(path), linguist.BlobSuffix)
	name = strings.TrimSuffix(name, ".ts")
	if !strings.HasPrefix(name, domain+"-") {
		return ""
	}
	return strings.TrimPrefix(name, domain+"-")
}

func run(args []string) error {
	_, err := newParser().ParseArgs(args)
	return err
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		// go-flags has already printed the error
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
