package pluralforms

import (
	"fmt"

	"golang.org/x/text/language"
)

// Rule selects one of Forms plural forms for a count.
type Rule struct {
	// Forms is the number of plural forms a translation must provide.
	Forms int
	// Header is the gettext Plural-Forms value the rule was compiled from.
	Header string
	// Categories lists, for every form index, the CLDR plural categories
	// that the form covers.
	Categories [][]string

	expr Expression
}

// NewRule compiles a gettext Plural-Forms header into a Rule.
func NewRule(header string, categories ...[]string) (Rule, error) {
	forms, expr, err := ParseHeader(header)
	if err != nil {
		return Rule{}, err
	}
	if len(categories) != 0 && len(categories) != forms {
		return Rule{}, fmt.Errorf("plural forms %q: %d forms but %d category sets", header, forms, len(categories))
	}
	return Rule{Forms: forms, Header: header, Categories: categories, expr: expr}, nil
}

func mustRule(header string, categories ...[]string) Rule {
	r, err := NewRule(header, categories...)
	if err != nil {
		panic(err)
	}
	return r
}

// Select returns the form index for n. Negative counts select the form of
// their absolute value and the result is always a valid index.
func (r Rule) Select(n int) int {
	if r.expr == nil || r.Forms <= 1 {
		return 0
	}
	if n < 0 {
		n = -n
	}
	idx := r.expr.Eval(uint32(n))
	if idx < 0 {
		return 0
	}
	if idx >= r.Forms {
		return r.Forms - 1
	}
	return idx
}

// Germanic is the two form "n != 1" rule used when a language has no entry in
// the table.
var Germanic = mustRule("nplurals=2; plural=(n != 1);", []string{"one"}, []string{"many", "other"})

var families = []struct {
	rule      Rule
	languages []string
}{{
	rule: mustRule("nplurals=1; plural=0;", []string{"other"}),
	languages: []string{
		"id", "ja", "jv", "km", "ko", "lo", "ms", "my", "th", "vi", "yo", "zh",
	},
}, {
	rule: Germanic,
	languages: []string{
		"af", "bg", "ca", "da", "de", "el", "en", "eo", "es", "et", "eu", "fi",
		"fo", "fy", "gl", "hu", "it", "nb", "nl", "nn", "no", "pt", "sv", "sw",
		"tr",
	},
}, {
	rule:      mustRule("nplurals=2; plural=(n > 1);", []string{"one"}, []string{"many", "other"}),
	languages: []string{"br", "fil", "fr", "hy", "oc", "pt-BR"},
}, {
	rule:      mustRule("nplurals=3; plural=(n==1) ? 0 : (n>=2 && n<=4) ? 1 : 2;", []string{"one"}, []string{"few"}, []string{"many", "other"}),
	languages: []string{"cs", "sk"},
}, {
	rule:      mustRule("nplurals=3; plural=(n==1 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2);", []string{"one"}, []string{"few"}, []string{"many", "other"}),
	languages: []string{"pl"},
}, {
	rule:      mustRule("nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n%10>=2 && (n%100<10 || n%100>=20) ? 1 : 2);", []string{"one"}, []string{"few"}, []string{"many", "other"}),
	languages: []string{"lt"},
}, {
	rule:      mustRule("nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n != 0 ? 1 : 2);", []string{"one"}, []string{"other"}, []string{"zero"}),
	languages: []string{"lv"},
}, {
	rule:      mustRule("nplurals=3; plural=(n==1 ? 0 : (n==0 || (n%100>0 && n%100<20)) ? 1 : 2);", []string{"one"}, []string{"few"}, []string{"other"}),
	languages: []string{"ro"},
}, {
	rule:      mustRule("nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2);", []string{"one"}, []string{"few"}, []string{"many", "other"}),
	languages: []string{"be", "bs", "hr", "ru", "sr", "uk"},
}, {
	rule:      mustRule("nplurals=4; plural=(n%100==1 ? 0 : n%100==2 ? 1 : n%100==3 || n%100==4 ? 2 : 3);", []string{"one"}, []string{"two"}, []string{"few"}, []string{"other"}),
	languages: []string{"sl"},
}, {
	rule:      mustRule("nplurals=6; plural=(n==0 ? 0 : n==1 ? 1 : n==2 ? 2 : n%100>=3 && n%100<=10 ? 3 : n%100>=11 ? 4 : 5);", []string{"zero"}, []string{"one"}, []string{"two"}, []string{"few"}, []string{"many"}, []string{"other"}),
	languages: []string{"ar"},
}}

var rulesByLanguage = func() map[string]Rule {
	m := make(map[string]Rule)
	for _, f := range families {
		for _, lang := range f.languages {
			m[lang] = f.rule
		}
	}
	return m
}()

// ForLanguage returns the plural rule for tag. A rule registered for the
// language and region ("pt-BR") wins over the one for the bare language.
// When the language is unknown, the Germanic rule is returned with ok set
// to false.
func ForLanguage(tag language.Tag) (rule Rule, ok bool) {
	base, _, region := tag.Raw()
	if region.IsCountry() {
		if rule, ok := rulesByLanguage[base.String()+"-"+region.String()]; ok {
			return rule, true
		}
	}
	if rule, ok := rulesByLanguage[base.String()]; ok {
		return rule, true
	}
	return Germanic, false
}
