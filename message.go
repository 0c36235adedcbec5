package linguist

import (
	"golang.org/x/text/language"

	"github.com/whisperfish/go-linguist/pluralforms"
)

// Status of a translation as recorded by the translator tooling.
type Status int

const (
	Finished Status = iota
	Unfinished
	// Vanished entries are no longer referenced by the application.
	Vanished
	// Obsolete is the older spelling of Vanished.
	Obsolete
)

var statusNames = map[Status]string{
	Finished:   "",
	Unfinished: "unfinished",
	Vanished:   "vanished",
	Obsolete:   "obsolete",
}

func (s Status) String() string {
	if s == Finished {
		return "finished"
	}
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func parseStatus(typ string) (Status, bool) {
	for s, name := range statusNames {
		if name == typ {
			return s, true
		}
	}
	return 0, false
}

// Live reports whether entries with this status take part in lookups.
func (s Status) Live() bool {
	return s == Finished || s == Unfinished
}

// Location points at a use of the message in the application sources. Line
// is kept verbatim: lupdate may write relative offsets such as "+3".
type Location struct {
	Filename string
	Line     string
}

// Message is one entry of a catalog.
type Message struct {
	ID                string
	Context           string
	Source            string
	OldSource         string
	Comment           string
	ExtraComment      string
	TranslatorComment string
	Locations         []Location
	Numerus           bool
	Status            Status
	// Translations holds the single translation of a plain entry, or one
	// string per plural form of a numerus entry.
	Translations []string
	// Line is the position of the message element in its file.
	Line int
}

// Context groups messages the way the .ts file does.
type Context struct {
	Name     string
	Messages []*Message
}

// Dictionary holds the parsed content of one locale file. It is never
// modified once returned by the parser and may be shared between goroutines.
type Dictionary struct {
	// Language is the declared locale of the catalog.
	Language language.Tag
	// FileLanguage, SourceLanguage and Version are the attributes of the
	// TS root element.
	FileLanguage   string
	SourceLanguage string
	Version        string
	Contexts       []*Context

	rule    pluralforms.Rule
	index   map[string]*Message
	derived bool
}

// Rule returns the plural rule of the dictionary language.
func (d *Dictionary) Rule() pluralforms.Rule {
	return d.rule
}

// Message returns the live entry for id. Vanished and obsolete entries are
// not returned.
func (d *Dictionary) Message(id string) (*Message, bool) {
	m, ok := d.index[id]
	return m, ok
}

// All returns every entry in document order, vanished ones included.
func (d *Dictionary) All() []*Message {
	var all []*Message
	for _, ctx := range d.Contexts {
		all = append(all, ctx.Messages...)
	}
	return all
}

// Len returns the number of live entries.
func (d *Dictionary) Len() int {
	return len(d.index)
}

// Translated reports whether m can be shown to users as is: it is finished,
// none of its forms is empty, and a numerus entry has exactly the number of
// forms its language requires.
func (d *Dictionary) Translated(m *Message) bool {
	if m.Status != Finished || len(m.Translations) == 0 {
		return false
	}
	for _, s := range m.Translations {
		if s == "" {
			return false
		}
	}
	if m.Numerus && !d.derived && len(m.Translations) != d.rule.Forms {
		return false
	}
	return true
}

// form returns the translation template of m for count n.
func (d *Dictionary) form(m *Message, n int) string {
	if !m.Numerus || len(m.Translations) == 1 {
		return m.Translations[0]
	}
	idx := d.rule.Select(n)
	if idx >= len(m.Translations) {
		idx = len(m.Translations) - 1
	}
	return m.Translations[idx]
}

// sourceDictionary builds the catalog of the source language: every live
// entry is finished and translated by its source text.
func (d *Dictionary) sourceDictionary(tag language.Tag) *Dictionary {
	src := &Dictionary{
		Language:       tag,
		FileLanguage:   tag.String(),
		SourceLanguage: tag.String(),
		Version:        d.Version,
		index:          make(map[string]*Message, len(d.index)),
		derived:        true,
	}
	src.rule, _ = pluralforms.ForLanguage(tag)
	for _, ctx := range d.Contexts {
		c := &Context{Name: ctx.Name}
		for _, m := range ctx.Messages {
			if !m.Status.Live() {
				continue
			}
			cp := *m
			cp.Status = Finished
			cp.Translations = []string{m.Source}
			cp.Locations = append([]Location(nil), m.Locations...)
			c.Messages = append(c.Messages, &cp)
			src.index[cp.ID] = &cp
		}
		src.Contexts = append(src.Contexts, c)
	}
	return src
}
