package linguist

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/language"

	"github.com/whisperfish/go-linguist/pluralforms"
)

type tsLocation struct {
	Filename string `xml:"filename,attr,omitempty"`
	Line     string `xml:"line,attr,omitempty"`
}

type tsNumerusForm struct {
	Text string `xml:",chardata"`
}

type tsTranslation struct {
	Type  string          `xml:"type,attr,omitempty"`
	Text  string          `xml:",chardata"`
	Forms []tsNumerusForm `xml:"numerusform"`
}

type tsMessage struct {
	ID                string         `xml:"id,attr"`
	Numerus           string         `xml:"numerus,attr,omitempty"`
	Locations         []tsLocation   `xml:"location"`
	Source            *string        `xml:"source"`
	OldSource         string         `xml:"oldsource,omitempty"`
	Comment           string         `xml:"comment,omitempty"`
	ExtraComment      string         `xml:"extracomment,omitempty"`
	TranslatorComment string         `xml:"translatorcomment,omitempty"`
	Translation       *tsTranslation `xml:"translation"`
}

var errNoRoot = errors.New("no TS root element")

// ParseTS parses a Qt Linguist .ts document into a Dictionary.
//
// locale is the declared locale of the catalog, for example "de" or
// "nl_BE". When it is empty, the language attribute of the document is used.
func ParseTS(r io.Reader, locale string) (*Dictionary, error) {
	return parseTS(r, "", locale)
}

// ParseTSFile parses the catalog stored at path. Files ending in BlobSuffix
// are decompressed first.
func ParseTSFile(path string, locale string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := openMapping(f)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	return parseData(m.data, path, locale)
}

func parseData(data []byte, name, locale string) (*Dictionary, error) {
	if strings.HasSuffix(name, BlobSuffix) {
		raw, err := decodeBlob(data)
		if err != nil {
			return nil, &ParseError{File: name, Locale: locale, Err: err}
		}
		data = raw
	}
	return parseTS(bytes.NewReader(data), name, locale)
}

func parseTS(r io.Reader, name, locale string) (*Dictionary, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	d := &Dictionary{index: make(map[string]*Message)}
	seen := make(map[string]bool)
	sawRoot := false
	var ctx *Context

	for {
		line, _ := dec.InputPos()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{File: name, Locale: locale, Line: line, Err: err}
		}

		switch t := tok.(type) {
		case xml.EndElement:
			if t.Name.Local == "context" {
				ctx = nil
			}
			continue
		case xml.StartElement:
			if !sawRoot {
				if t.Name.Local != "TS" {
					return nil, &ParseError{File: name, Locale: locale, Line: line, Err: fmt.Errorf("unexpected root element <%s>", t.Name.Local)}
				}
				sawRoot = true
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "version":
						d.Version = attr.Value
					case "language":
						d.FileLanguage = attr.Value
					case "sourcelanguage":
						d.SourceLanguage = attr.Value
					}
				}
				continue
			}

			switch t.Name.Local {
			case "context":
				ctx = &Context{}
				d.Contexts = append(d.Contexts, ctx)
			case "name":
				var ctxName string
				if err := dec.DecodeElement(&ctxName, &t); err != nil {
					return nil, &ParseError{File: name, Locale: locale, Line: line, Err: err}
				}
				if ctx != nil {
					ctx.Name = ctxName
				}
			case "message":
				var tm tsMessage
				if err := dec.DecodeElement(&tm, &t); err != nil {
					return nil, &ParseError{File: name, Locale: locale, Line: line, Err: err}
				}
				if ctx == nil {
					ctx = &Context{}
					d.Contexts = append(d.Contexts, ctx)
				}
				m, err := tm.message(locale, ctx.Name, line)
				if err != nil {
					return nil, err
				}
				if seen[m.ID] {
					return nil, &SchemaError{Locale: locale, ID: m.ID, Line: line, Reason: "duplicate message id"}
				}
				seen[m.ID] = true
				ctx.Messages = append(ctx.Messages, m)
				if m.Status.Live() {
					d.index[m.ID] = m
				}
			default:
				if err := dec.Skip(); err != nil {
					return nil, &ParseError{File: name, Locale: locale, Line: line, Err: err}
				}
			}
		}
	}
	if !sawRoot {
		return nil, &ParseError{File: name, Locale: locale, Err: errNoRoot}
	}

	tagName := locale
	if tagName == "" {
		tagName = d.FileLanguage
	}
	if tagName != "" {
		tag, err := language.Parse(strings.ReplaceAll(tagName, "_", "-"))
		if err != nil {
			return nil, &SchemaError{Locale: locale, Reason: fmt.Sprintf("invalid language %q: %v", tagName, err)}
		}
		d.Language = tag
	}
	rule, ok := pluralforms.ForLanguage(d.Language)
	if !ok {
		Logger().Debug().
			Str("locale", d.Language.String()).
			Msg("No plural rule for language, using n != 1")
	}
	d.rule = rule

	Logger().Debug().
		Str("file", name).
		Str("locale", d.Language.String()).
		Int("messages", len(seen)).
		Int("live", len(d.index)).
		Msg("Parsed catalog")
	return d, nil
}

func (tm *tsMessage) message(locale, context string, line int) (*Message, error) {
	if tm.ID == "" {
		return nil, &SchemaError{Locale: locale, Line: line, Reason: "message without id"}
	}
	if tm.Source == nil {
		return nil, &SchemaError{Locale: locale, ID: tm.ID, Line: line, Reason: "message without source"}
	}
	m := &Message{
		ID:                tm.ID,
		Context:           context,
		Source:            *tm.Source,
		OldSource:         tm.OldSource,
		Comment:           tm.Comment,
		ExtraComment:      tm.ExtraComment,
		TranslatorComment: tm.TranslatorComment,
		Numerus:           tm.Numerus == "yes",
		Line:              line,
	}
	for _, loc := range tm.Locations {
		m.Locations = append(m.Locations, Location{Filename: loc.Filename, Line: loc.Line})
	}

	if tm.Translation == nil {
		m.Status = Unfinished
		return m, nil
	}
	status, ok := parseStatus(tm.Translation.Type)
	if !ok {
		return nil, &SchemaError{Locale: locale, ID: tm.ID, Line: line, Reason: fmt.Sprintf("unknown translation type %q", tm.Translation.Type)}
	}
	m.Status = status
	if m.Numerus {
		for _, form := range tm.Translation.Forms {
			m.Translations = append(m.Translations, form.Text)
		}
	} else {
		m.Translations = []string{tm.Translation.Text}
	}
	return m, nil
}
