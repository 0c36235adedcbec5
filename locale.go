package linguist

import (
	"os"
	"slices"
	"strings"
)

var osGetenv = os.Getenv

// UserLanguages returns the user's preferred locales, read from the
// LANGUAGE, LC_ALL, LC_MESSAGES and LANG environment variables.
func UserLanguages() []string {
	if language := osGetenv("LANGUAGE"); language != "" {
		var langs []string
		for _, lang := range strings.Split(language, ":") {
			if lang != "" {
				langs = append(langs, lang)
			}
		}
		return langs
	}
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if lang := osGetenv(name); lang != "" {
			return []string{lang}
		}
	}
	return nil
}

// normalizeLanguages expands every locale into its fallbacks and removes
// duplicates. The list ends at the first "C" or "POSIX" locale.
func normalizeLanguages(languages []string) []string {
	var out []string
	for _, lang := range languages {
		if lang == "C" || lang == "POSIX" {
			break
		}
		out = appendLocales(out, expandLocale(underscoreTerritory(lang)))
	}
	return out
}

// appendLocales appends the locales not already in list.
func appendLocales(list []string, locales []string) []string {
	for _, l := range locales {
		if !slices.Contains(list, l) {
			list = append(list, l)
		}
	}
	return list
}

// underscoreTerritory rewrites BCP 47 spellings such as "pt-BR" into the
// "pt_BR" form used by catalog file names.
func underscoreTerritory(locale string) string {
	end := strings.IndexAny(locale, ".@")
	if end < 0 {
		end = len(locale)
	}
	return strings.ReplaceAll(locale[:end], "-", "_") + locale[end:]
}

// expandLocale returns locale and its less specific variants, most
// specific first.
func expandLocale(locale string) []string {
	lang, territory, codeset, modifier := splitLocale(locale)

	modifiers := []string{""}
	if modifier != "" {
		modifiers = []string{modifier, ""}
	}
	territories := []string{""}
	if territory != "" {
		territories = []string{territory, ""}
	}
	codesets := []string{""}
	if codeset != "" {
		codesets = []string{codeset}
		if normalized := normalizeCodeset(codeset); normalized != codeset {
			codesets = append(codesets, normalized)
		}
		codesets = append(codesets, "")
	}

	var locales []string
	for _, m := range modifiers {
		for _, t := range territories {
			for _, c := range codesets {
				locales = append(locales, lang+t+c+m)
			}
		}
	}
	return locales
}

// splitLocale splits "ll_TT.codeset@modifier" into its parts, keeping the
// separators on the optional ones.
func splitLocale(locale string) (lang, territory, codeset, modifier string) {
	if i := strings.IndexByte(locale, '@'); i >= 0 {
		locale, modifier = locale[:i], locale[i:]
	}
	if i := strings.IndexByte(locale, '.'); i >= 0 {
		locale, codeset = locale[:i], locale[i:]
	}
	if i := strings.IndexByte(locale, '_'); i >= 0 {
		locale, territory = locale[:i], locale[i:]
	}
	return locale, territory, codeset, modifier
}

// normalizeCodeset lowercases the codeset, drops punctuation and prefixes
// purely numeric names with "iso".
func normalizeCodeset(codeset string) string {
	var b strings.Builder
	digits := true
	for _, r := range strings.TrimPrefix(codeset, ".") {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			digits = false
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			digits = false
			b.WriteRune(r + 'a' - 'A')
		}
	}
	if digits {
		return ".iso" + b.String()
	}
	return "." + b.String()
}
