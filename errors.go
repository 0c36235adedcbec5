package linguist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound         = errors.New("message not found")
	ErrMissingCount     = errors.New("count required")
	ErrArgumentMismatch = errors.New("missing argument for placeholder")
)

// ParseError reports a catalog that is not a well-formed .ts document.
type ParseError struct {
	File   string
	Locale string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	name := e.File
	if name == "" {
		name = "catalog"
	}
	if e.Locale != "" {
		name = fmt.Sprintf("%s (%s)", name, e.Locale)
	}
	return fmt.Sprintf("cannot parse %s at line %d: %v", name, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports a well-formed document whose content breaks the
// catalog rules: a message without id or source, a duplicate id, an unknown
// translation type or a wrong number of plural forms.
type SchemaError struct {
	Locale string
	ID     string
	Line   int
	Reason string
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("invalid catalog")
	if e.Locale != "" {
		fmt.Fprintf(&b, " %s", e.Locale)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	if e.ID != "" {
		fmt.Fprintf(&b, ": message %q", e.ID)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

// NotFoundError is returned when no catalog of the fallback chain has a live
// entry for ID.
type NotFoundError struct {
	ID      string
	Locales []string
}

func (e *NotFoundError) Error() string {
	if len(e.Locales) == 0 {
		return fmt.Sprintf("message %q not found: no catalog loaded", e.ID)
	}
	return fmt.Sprintf("message %q not found in %s", e.ID, strings.Join(e.Locales, ", "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// MissingCountError is returned when a plural entry, or a template using
// %n, is looked up without a count.
type MissingCountError struct {
	ID string
}

func (e *MissingCountError) Error() string {
	return fmt.Sprintf("message %q requires a count", e.ID)
}

func (e *MissingCountError) Is(target error) bool {
	return target == ErrMissingCount
}

// ArgumentMismatchError is returned when a template references %N but
// fewer than N arguments were supplied.
type ArgumentMismatchError struct {
	ID          string
	Placeholder int
	Args        int
}

func (e *ArgumentMismatchError) Error() string {
	return fmt.Sprintf("message %q references %%%d but %d argument(s) given", e.ID, e.Placeholder, e.Args)
}

func (e *ArgumentMismatchError) Is(target error) bool {
	return target == ErrArgumentMismatch
}
