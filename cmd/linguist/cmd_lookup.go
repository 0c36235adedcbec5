package main

import (
	"fmt"

	"github.com/whisperfish/go-linguist"
)

type lookupCommand struct {
	Dir     string   `short:"d" long:"dir" value-name:"DIRECTORY" description:"read catalogs from DIRECTORY"`
	Locales []string `short:"l" long:"locale" value-name:"LOCALE" description:"look the id up in LOCALE, may be repeated (default: the user locale)"`
	Count   *int     `short:"n" long:"count" value-name:"N" description:"select the plural form for N"`

	Positional struct {
		ID   string   `positional-arg-name:"ID" required:"yes"`
		Args []string `positional-arg-name:"ARG"`
	} `positional-args:"yes"`
}

func (x *lookupCommand) Execute(args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	dir := cfg.Translations.Dir
	if x.Dir != "" {
		dir = x.Dir
	}

	translations := linguist.NewTranslations(dir, cfg.Translations.Domain, linguist.DefaultResolver)
	translations.SourceLanguage = cfg.Translations.SourceLanguage
	translations.DefaultLocale = cfg.Translations.DefaultLocale
	if err := translations.Preload(cfg.Translations.Preload...); err != nil {
		return err
	}

	locales := x.Locales
	if len(locales) == 0 {
		locales = linguist.UserLanguages()
	}
	cat := translations.Switch(locales...)

	var s string
	if x.Count != nil {
		s, err = cat.TrN(x.Positional.ID, *x.Count, x.Positional.Args...)
	} else {
		s, err = cat.Tr(x.Positional.ID, x.Positional.Args...)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(Stdout, s)
	return err
}
