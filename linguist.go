// Loads Qt Linguist .ts translation catalogs and resolves message ids with
// plural forms, placeholders and locale fallback.

package linguist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

// Translations holds the catalogs of the different locales your app
// supports. Use NewTranslations to create an instance.
type Translations struct {
	// Ideally NewTranslations would return a *Translations
	// pointer.  As we don't want the mutex protecting the catalog
	// cache to be copied, we embed a pointer to an ancillary
	// struct holding our data.
	*translations
}

type translations struct {
	mu       sync.Mutex
	cache    map[string]*cacheEntry
	root     string
	fsys     fs.FS
	domain   string
	resolver PathResolver
	active   atomic.Pointer[Catalog]

	// SourceLanguage is the language the source texts are written in. It
	// needs no catalog file of its own.
	SourceLanguage string
	// DefaultLocale is appended to every fallback chain. Leave it empty to
	// disable the fallback.
	DefaultLocale string
}

type cacheEntry struct {
	once sync.Once
	dict *Dictionary
	err  error
}

// PathResolver resolves the path of the catalog of a locale. It is called
// with an empty locale for the untranslated template.
type PathResolver func(root string, locale string, domain string) string

// DefaultResolver resolves paths in the format of:
// <root>/<domain>-<locale>.ts, and <root>/<domain>.ts for the template.
func DefaultResolver(root string, locale string, domain string) string {
	if locale == "" {
		return path.Join(root, domain+".ts")
	}
	return path.Join(root, fmt.Sprintf("%s-%s.ts", domain, locale))
}

// NewTranslations is the main entry point of the package. Use this to set
// up the locales for your app.
// root is the directory holding the catalogs, domain their common prefix
// and resolver a function that resolves catalog paths. A nil resolver
// selects DefaultResolver.
func NewTranslations(root string, domain string, resolver PathResolver) Translations {
	if resolver == nil {
		resolver = DefaultResolver
	}
	return Translations{&translations{
		root:           root,
		resolver:       resolver,
		domain:         domain,
		cache:          map[string]*cacheEntry{},
		SourceLanguage: "en",
		DefaultLocale:  "en",
	}}
}

// NewTranslationsFS is like NewTranslations but reads the catalogs from
// fsys, for example an embed.FS. Paths are resolved relative to the root of
// fsys.
func NewTranslationsFS(fsys fs.FS, domain string, resolver PathResolver) Translations {
	t := NewTranslations(".", domain, resolver)
	t.fsys = fsys
	return t
}

// Preload a list of locales (if they're available). This is useful if you want
// to limit IO to a specific time in your app, for example startup. Subsequent
// calls to Preload or Locale using a locale given here will not do any IO.
// Catalogs are parsed concurrently; the first parse error is returned.
func (t Translations) Preload(locales ...string) error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, locale := range normalizeLanguages(locales) {
		locale := locale
		g.Go(func() error {
			_, err := t.load(locale)
			return err
		})
	}
	return g.Wait()
}

func (t Translations) load(locale string) (*Dictionary, error) {
	t.mu.Lock()
	entry, ok := t.cache[locale]
	if !ok {
		entry = &cacheEntry{}
		t.cache[locale] = entry
	}
	t.mu.Unlock()

	entry.once.Do(func() {
		entry.dict, entry.err = t.open(locale)
		if entry.err != nil {
			Logger().Warn().Err(entry.err).Str("locale", locale).Msg("Cannot load catalog")
		}
	})
	return entry.dict, entry.err
}

func (t Translations) open(locale string) (*Dictionary, error) {
	d, err := t.parse(t.resolver(t.root, locale, t.domain), locale)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if locale != "" && locale == underscoreTerritory(t.SourceLanguage) {
		return t.sourceCatalog(locale)
	}
	return nil, nil
}

// parse reads the catalog at p, or its compressed variant.
func (t Translations) parse(p, locale string) (*Dictionary, error) {
	for _, name := range []string{p, p + BlobSuffix} {
		var d *Dictionary
		var err error
		if t.fsys != nil {
			var data []byte
			data, err = fs.ReadFile(t.fsys, name)
			if err == nil {
				d, err = parseData(data, name, locale)
			}
		} else {
			d, err = ParseTSFile(name, locale)
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return d, err
	}
	return nil, fs.ErrNotExist
}

// sourceCatalog derives the catalog of the source language from the
// template, or from the first translated catalog when there is none.
func (t Translations) sourceCatalog(locale string) (*Dictionary, error) {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return nil, &SchemaError{Locale: locale, Reason: fmt.Sprintf("invalid source language: %v", err)}
	}
	base, err := t.load("")
	if base == nil {
		for _, other := range t.Available() {
			if other == locale {
				continue
			}
			d, lerr := t.load(other)
			if lerr != nil {
				Logger().Debug().Err(lerr).Str("locale", locale).Str("from", other).Msg("Skipping broken catalog for source catalog")
				err = lerr
				continue
			}
			if d != nil {
				base = d
				break
			}
		}
	}
	if base == nil {
		// Only an error when every candidate failed to parse.
		return nil, err
	}
	Logger().Debug().Str("locale", locale).Str("from", base.Language.String()).Msg("Derived source catalog")
	return base.sourceDictionary(tag), nil
}

func (t Translations) dir() (fs.FS, string) {
	if t.fsys != nil {
		return t.fsys, t.root
	}
	return os.DirFS(t.root), "."
}

// Available lists the locales that have a catalog in the root directory,
// in lexical order. It assumes the DefaultResolver layout.
func (t Translations) Available() []string {
	fsys, dir := t.dir()
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		Logger().Debug().Err(err).Str("dir", t.root).Msg("Cannot list catalogs")
		return nil
	}
	prefix := t.domain + "-"
	seen := make(map[string]bool)
	var locales []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), BlobSuffix)
		if e.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".ts") {
			continue
		}
		locale := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".ts")
		if locale != "" && !seen[locale] {
			seen[locale] = true
			locales = append(locales, locale)
		}
	}
	sort.Strings(locales)
	return locales
}

// Match returns the available locale that best fits the preferences, which
// may be locale names ("nl_BE"), BCP 47 tags or Accept-Language values. The
// source language is returned when nothing matches.
func (t Translations) Match(preferences ...string) string {
	names := []string{underscoreTerritory(t.SourceLanguage)}
	tags := []language.Tag{language.Make(t.SourceLanguage)}
	for _, locale := range t.Available() {
		tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
		if err != nil {
			Logger().Debug().Err(err).Str("locale", locale).Msg("Ignoring catalog with invalid locale")
			continue
		}
		names = append(names, locale)
		tags = append(tags, tag)
	}
	prefs := make([]string, len(preferences))
	for i, p := range preferences {
		prefs[i] = strings.ReplaceAll(p, "_", "-")
	}
	_, idx := language.MatchStrings(language.NewMatcher(tags), prefs...)
	return names[idx]
}

// Locale returns the catalog translations for a list of locales.
//
// If translations are not found in the first locale, the each
// subsequent one is consulted until a match is found, then the
// DefaultLocale.
func (t Translations) Locale(languages ...string) Catalog {
	chain := normalizeLanguages(languages)
	if t.DefaultLocale != "" {
		// The default locale stays in the chain when a "C" locale cut the
		// user's list short.
		chain = appendLocales(chain, expandLocale(underscoreTerritory(t.DefaultLocale)))
	}
	var dicts []*Dictionary
	seen := make(map[*Dictionary]bool)
	for _, lang := range chain {
		d, _ := t.load(lang)
		if d != nil && !seen[d] {
			seen[d] = true
			dicts = append(dicts, d)
		}
	}
	return Catalog{dicts}
}

// UserLocale returns the catalog translations for the user's Locale.
func (t Translations) UserLocale() Catalog {
	return t.Locale(UserLanguages()...)
}

// Switch makes the catalog of languages the active one and returns it.
// Lookups already holding the previous catalog are not affected.
func (t Translations) Switch(languages ...string) Catalog {
	c := t.Locale(languages...)
	t.active.Store(&c)
	Logger().Info().Strs("languages", languages).Msg("Switched active locale")
	return c
}

// Active returns the catalog selected by the last Switch, or the catalog of
// the DefaultLocale before any.
func (t Translations) Active() Catalog {
	if c := t.active.Load(); c != nil {
		return *c
	}
	c := t.Locale()
	t.active.CompareAndSwap(nil, &c)
	return *t.active.Load()
}

// Lookup translates id in locale.
func (t Translations) Lookup(locale, id string, args ...string) (string, error) {
	return t.Locale(locale).Tr(id, args...)
}

// LookupN translates the plural entry id in locale for count n.
func (t Translations) LookupN(locale, id string, n int, args ...string) (string, error) {
	return t.Locale(locale).TrN(id, n, args...)
}
