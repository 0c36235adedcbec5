package linguist

import (
	"golang.org/x/text/language"
)

// Catalog of translations for a given locale: the dictionaries of the
// requested locales followed by those of the fallback locale. A Catalog is
// never modified and may be copied and shared freely.
type Catalog struct {
	dicts []*Dictionary
}

// find returns the dictionary and entry that answer id. A finished
// translation anywhere in the chain wins over an unfinished entry found
// earlier; translated is false when only unfinished entries exist.
func (c Catalog) find(id string) (d *Dictionary, m *Message, translated bool) {
	for _, dict := range c.dicts {
		msg, ok := dict.Message(id)
		if !ok {
			continue
		}
		if dict.Translated(msg) {
			return dict, msg, true
		}
		if m == nil {
			d, m = dict, msg
		}
	}
	return d, m, false
}

func (c Catalog) lookup(id string, n *count, args []string) (string, error) {
	d, m, translated := c.find(id)
	if m == nil {
		return "", &NotFoundError{ID: id, Locales: c.locales()}
	}
	if m.Numerus && n == nil {
		return "", &MissingCountError{ID: id}
	}

	template := m.Source
	if translated {
		template = m.Translations[0]
		if n != nil {
			template = d.form(m, n.n)
		}
	}
	return expand(d.Language, id, template, n, args)
}

// Tr returns the translation of id with %1, %2, ... replaced by args.
func (c Catalog) Tr(id string, args ...string) (string, error) {
	return c.lookup(id, nil, args)
}

// TrN returns the plural form of id selected by n, with %n replaced by n
// and %1, %2, ... by args.
func (c Catalog) TrN(id string, n int, args ...string) (string, error) {
	return c.lookup(id, &count{n}, args)
}

// Get is like Tr but returns id itself when the lookup fails.
func (c Catalog) Get(id string, args ...string) string {
	s, err := c.Tr(id, args...)
	if err != nil {
		logMissingOnce(c.name(), id, err)
		return id
	}
	return s
}

// GetN is like TrN but returns id itself when the lookup fails.
func (c Catalog) GetN(id string, n int, args ...string) string {
	s, err := c.TrN(id, n, args...)
	if err != nil {
		logMissingOnce(c.name(), id, err)
		return id
	}
	return s
}

// Languages returns the languages of the fallback chain, in lookup order.
func (c Catalog) Languages() []language.Tag {
	tags := make([]language.Tag, len(c.dicts))
	for i, d := range c.dicts {
		tags[i] = d.Language
	}
	return tags
}

func (c Catalog) locales() []string {
	var names []string
	for _, d := range c.dicts {
		names = append(names, d.Language.String())
	}
	return names
}

func (c Catalog) name() string {
	if len(c.dicts) == 0 {
		return ""
	}
	return c.dicts[0].Language.String()
}
