package linguist

import (
	"fmt"
)

// Validate checks the live entries of d: a finished entry must not be
// empty, and a finished plural entry must provide exactly as many forms as
// the plural rule of its language. It returns one *SchemaError per
// violation.
func (d *Dictionary) Validate() []error {
	if d.derived {
		return nil
	}
	var errs []error
	locale := d.Language.String()
	for _, m := range d.All() {
		if m.Status != Finished {
			continue
		}
		if m.Numerus && len(m.Translations) != d.rule.Forms {
			errs = append(errs, &SchemaError{
				Locale: locale,
				ID:     m.ID,
				Line:   m.Line,
				Reason: fmt.Sprintf("%d plural forms, %s needs %d", len(m.Translations), locale, d.rule.Forms),
			})
			continue
		}
		for i, s := range m.Translations {
			if s == "" {
				errs = append(errs, &SchemaError{
					Locale: locale,
					ID:     m.ID,
					Line:   m.Line,
					Reason: fmt.Sprintf("finished translation %d is empty", i),
				})
				break
			}
		}
		if len(m.Translations) == 0 {
			errs = append(errs, &SchemaError{Locale: locale, ID: m.ID, Line: m.Line, Reason: "finished entry without translation"})
		}
	}
	return errs
}
