package main

import (
	"os"

	"github.com/whisperfish/go-linguist/internal/stats"
)

type statsCommand struct {
	Dir    string `short:"d" long:"dir" value-name:"DIRECTORY" description:"read catalogs from DIRECTORY"`
	Output string `short:"o" long:"output" value-name:"FILE" description:"write the report to FILE"`
}

func (x *statsCommand) Execute(args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	dir := cfg.Translations.Dir
	if x.Dir != "" {
		dir = x.Dir
	}

	report, err := stats.Scan(dir, cfg.Translations.Domain)
	if err != nil {
		return err
	}
	if x.Output == "" {
		return report.Write(Stdout)
	}
	f, err := os.Create(x.Output)
	if err != nil {
		return err
	}
	if err := report.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
