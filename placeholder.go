package linguist

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// count is the plural count of a lookup. Lookups made without one leave it
// nil.
type count struct {
	n int
}

// expand substitutes the placeholders of template:
//
//	%1 .. %99  the positional arguments
//	%L1 .. %L99  the same, the localized marker is accepted and ignored
//	%n  the count
//	%Ln  the count formatted for tag
//
// Any other % sequence is copied as is. Surplus arguments are ignored.
func expand(tag language.Tag, id, template string, c *count, args []string) (string, error) {
	if strings.IndexByte(template, '%') < 0 {
		return template, nil
	}

	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); i++ {
		ch := template[i]
		if ch != '%' || i+1 == len(template) {
			b.WriteByte(ch)
			continue
		}

		j := i + 1
		localized := false
		if template[j] == 'L' && j+1 < len(template) {
			localized = true
			j++
		}

		switch {
		case template[j] == 'n':
			if c == nil {
				return "", &MissingCountError{ID: id}
			}
			if localized {
				b.WriteString(message.NewPrinter(tag).Sprint(number.Decimal(c.n)))
			} else {
				b.WriteString(strconv.Itoa(c.n))
			}
			i = j
		case isDigit(template[j]):
			k := j + 1
			if k < len(template) && isDigit(template[k]) {
				k++
			}
			idx, _ := strconv.Atoi(template[j:k])
			if idx == 0 {
				b.WriteByte(ch)
				continue
			}
			if idx > len(args) {
				return "", &ArgumentMismatchError{ID: id, Placeholder: idx, Args: len(args)}
			}
			b.WriteString(args[idx-1])
			i = k - 1
		default:
			b.WriteByte(ch)
		}
	}
	return b.String(), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
