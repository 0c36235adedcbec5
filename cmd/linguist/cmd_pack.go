package main

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/whisperfish/go-linguist"
	"github.com/whisperfish/go-linguist/internal/export"
)

type packCommand struct {
	Output string `short:"o" long:"output" value-name:"FILE" description:"write the blob to FILE (default: the input with a .zst suffix)"`

	Positional struct {
		File string `positional-arg-name:"FILE" required:"yes"`
	} `positional-args:"yes"`
}

func (x *packCommand) Execute(args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	d, err := linguist.ParseTSFile(x.Positional.File, localeFromPath(x.Positional.File, cfg.Translations.Domain))
	if err != nil {
		return err
	}
	out := x.Output
	if out == "" {
		out = x.Positional.File + linguist.BlobSuffix
	}
	return writeFile(out, func(w io.Writer) error {
		return linguist.WriteBlob(w, d)
	})
}

type exportCommand struct {
	Output string `short:"o" long:"output" value-name:"FILE" description:"write the messages to FILE (default: active.<lang>.toml)"`

	Positional struct {
		File string `positional-arg-name:"FILE" required:"yes"`
	} `positional-args:"yes"`
}

func (x *exportCommand) Execute(args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	d, err := linguist.ParseTSFile(x.Positional.File, localeFromPath(x.Positional.File, cfg.Translations.Domain))
	if err != nil {
		return err
	}
	out := x.Output
	if out == "" {
		out = export.Filename(d)
	}
	return writeFile(out, func(w io.Writer) error {
		return export.WriteTOML(w, d)
	})
}

func writeFile(name string, write func(w io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info().Str("file", name).Msg("Wrote output")
	return nil
}
