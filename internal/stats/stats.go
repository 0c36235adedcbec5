// Package stats computes how complete the translation catalogs are and
// renders the report with the shields.io badge URLs used by the project.
package stats

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/rs/zerolog/log"

	"github.com/whisperfish/go-linguist"
)

var ErrNoCatalogs = errors.New("no translation catalogs found")

// Language holds the counts of one catalog.
type Language struct {
	Name       string
	Total      int
	Unfinished int
}

// Finished reports whether every entry of the catalog is translated.
func (l Language) Finished() bool {
	return l.Unfinished == 0
}

// Report aggregates the counts of every catalog of a domain.
type Report struct {
	Languages []Language
	// Translated is the share of translated entries over all catalogs, in
	// percent and rounded down.
	Translated int
	Finished   []string
	Unfinished []string
}

// Scan reads every <domain>-<lang>.ts catalog in dir.
func Scan(dir, domain string) (*Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	prefix := domain + "-"
	var langs []Language
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".ts") {
			continue
		}
		if !strings.HasPrefix(name, prefix) {
			log.Warn().Str("file", name).Msg("Catalog name does not follow the <domain>-<lang>.ts format")
			continue
		}
		lang := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".ts")
		log.Debug().Str("lang", lang).Msg("Processing language")

		d, err := linguist.ParseTSFile(filepath.Join(dir, name), lang)
		if err != nil {
			return nil, err
		}
		langs = append(langs, Count(lang, d))
	}
	return Compute(langs)
}

// Count returns the counts of d.
func Count(name string, d *linguist.Dictionary) Language {
	l := Language{Name: name}
	for _, m := range d.All() {
		l.Total++
		if m.Status == linguist.Unfinished {
			l.Unfinished++
		}
	}
	return l
}

// Compute aggregates the counts of langs.
func Compute(langs []Language) (*Report, error) {
	r := &Report{Languages: append([]Language(nil), langs...)}
	sort.Slice(r.Languages, func(i, j int) bool {
		return r.Languages[i].Name < r.Languages[j].Name
	})

	var total, unfinished int
	for _, l := range r.Languages {
		total += l.Total
		unfinished += l.Unfinished
		if l.Finished() {
			r.Finished = append(r.Finished, l.Name)
		} else {
			r.Unfinished = append(r.Unfinished, l.Name)
		}
	}
	if total == 0 {
		return nil, ErrNoCatalogs
	}
	r.Translated = (total - unfinished) * 100 / total
	return r, nil
}

// BadgeColor returns the shields.io colour for a percentage.
func BadgeColor(percent int) string {
	switch {
	case percent >= 90:
		return "brightgreen"
	case percent >= 70:
		return "orange"
	case percent >= 50:
		return "red"
	default:
		return "critical"
	}
}

// LocalizedBadge is the URL of the badge showing the translated share.
func (r *Report) LocalizedBadge() string {
	return fmt.Sprintf("https://img.shields.io/badge/Localized-%d%%25-%s", r.Translated, BadgeColor(r.Translated))
}

// LanguagesBadge is the URL of the badge showing the fully translated
// languages.
func (r *Report) LanguagesBadge() string {
	all := len(r.Finished) + len(r.Unfinished)
	percent := len(r.Finished) * 100 / all
	return fmt.Sprintf("https://img.shields.io/badge/Languages-%d%%2F%d-%s", len(r.Finished), all, BadgeColor(percent))
}

const reportTemplateData = `{{ range .Languages -}}
{{ .Name }} has {{ .Unfinished }} unfinished translations of {{ .Total }}
{{ end -}}
{{ .Translated }}% lines are translated
{{ len .Finished }} of {{ len .Languages }} languages are translated
{{ .LocalizedBadge }}
{{ .LanguagesBadge }}
`

var reportTemplate = template.Must(template.New("report").Parse(reportTemplateData))

// Write renders the report as text.
func (r *Report) Write(w io.Writer) error {
	return reportTemplate.Execute(w, r)
}
