package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/whisperfish/go-linguist"
)

var errInvalidCatalogs = errors.New("invalid catalogs")

type checkCommand struct {
	Positional struct {
		Files []string `positional-arg-name:"FILE" required:"1"`
	} `positional-args:"yes"`
}

func (x *checkCommand) Execute(args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	failed := false
	for _, file := range x.Positional.Files {
		d, err := linguist.ParseTSFile(file, localeFromPath(file, cfg.Translations.Domain))
		if err != nil {
			fmt.Fprintf(Stdout, "%s: %v\n", file, err)
			failed = true
			continue
		}
		errs := d.Validate()
		for _, err := range errs {
			fmt.Fprintf(Stdout, "%s: %v\n", file, err)
		}
		if len(errs) > 0 {
			failed = true
		}
		log.Info().Str("file", file).Int("entries", d.Len()).Int("violations", len(errs)).Msg("Checked catalog")
	}
	if failed {
		return errInvalidCatalogs
	}
	return nil
}
