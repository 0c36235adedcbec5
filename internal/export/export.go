// Package export converts catalogs into go-i18n message files.
//
// Positional placeholders become template fields: %1 is rendered from
// {{.Arg1}}, and %n or %Ln from {{.Count}}. Callers pass both in the
// TemplateData of the localize request.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"

	"github.com/whisperfish/go-linguist"
)

// Filename returns the go-i18n file name for d, for example
// "active.nl-BE.toml".
func Filename(d *linguist.Dictionary) string {
	return fmt.Sprintf("active.%s.toml", d.Language)
}

// Messages returns the translated live entries of d in document order.
// Unfinished entries are left out so that go-i18n falls back to its
// default language for them.
func Messages(d *linguist.Dictionary) []*i18n.Message {
	rule := d.Rule()
	var msgs []*i18n.Message
	for _, m := range d.All() {
		if !d.Translated(m) {
			continue
		}
		msg := &i18n.Message{ID: m.ID, Description: m.ExtraComment}
		if !m.Numerus {
			msg.Other = Template(m.Translations[0])
			msgs = append(msgs, msg)
			continue
		}
		for i, form := range m.Translations {
			if i >= len(rule.Categories) {
				break
			}
			for _, category := range rule.Categories[i] {
				setCategory(msg, category, Template(form))
			}
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

func setCategory(msg *i18n.Message, category, text string) {
	switch category {
	case "zero":
		msg.Zero = text
	case "one":
		msg.One = text
	case "two":
		msg.Two = text
	case "few":
		msg.Few = text
	case "many":
		msg.Many = text
	case "other":
		msg.Other = text
	}
}

// Template rewrites the placeholders of a translation as go-i18n template
// fields. Other % sequences are kept.
func Template(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '%' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		j := i + 1
		if s[j] == 'L' && j+1 < len(s) {
			j++
		}
		switch {
		case s[j] == 'n':
			b.WriteString("{{.Count}}")
			i = j
		case s[j] >= '1' && s[j] <= '9':
			k := j + 1
			if k < len(s) && s[k] >= '0' && s[k] <= '9' {
				k++
			}
			n, _ := strconv.Atoi(s[j:k])
			fmt.Fprintf(&b, "{{.Arg%d}}", n)
			i = k - 1
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func tomlValue(msg *i18n.Message) any {
	if msg.Zero == "" && msg.One == "" && msg.Two == "" && msg.Few == "" && msg.Many == "" && msg.Description == "" {
		return msg.Other
	}
	v := make(map[string]string)
	for key, text := range map[string]string{
		"description": msg.Description,
		"zero":        msg.Zero,
		"one":         msg.One,
		"two":         msg.Two,
		"few":         msg.Few,
		"many":        msg.Many,
		"other":       msg.Other,
	} {
		if text != "" {
			v[key] = text
		}
	}
	return v
}

// WriteTOML writes the translated entries of d as a go-i18n TOML message
// file.
func WriteTOML(w io.Writer, d *linguist.Dictionary) error {
	doc := make(map[string]any)
	for _, msg := range Messages(d) {
		doc[msg.ID] = tomlValue(msg)
	}
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("cannot encode %s: %w", Filename(d), err)
	}
	_, err = w.Write(data)
	return err
}
