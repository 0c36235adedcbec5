package linguist

import (
	"encoding/xml"
	"io"
)

const tsHeader = `<?xml version="1.0" encoding="utf-8"?>` + "\n" + `<!DOCTYPE TS>` + "\n"

type tsDocument struct {
	XMLName        xml.Name    `xml:"TS"`
	Version        string      `xml:"version,attr,omitempty"`
	Language       string      `xml:"language,attr,omitempty"`
	SourceLanguage string      `xml:"sourcelanguage,attr,omitempty"`
	Contexts       []tsContext `xml:"context"`
}

type tsContext struct {
	Name     string      `xml:"name"`
	Messages []tsMessage `xml:"message"`
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// WriteTo writes d as a .ts document. Vanished and obsolete entries are
// written too, so that parsing the output yields the same dictionary.
func (d *Dictionary) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if _, err := io.WriteString(cw, tsHeader); err != nil {
		return cw.n, err
	}

	doc := tsDocument{
		Version:        d.Version,
		Language:       d.FileLanguage,
		SourceLanguage: d.SourceLanguage,
	}
	for _, ctx := range d.Contexts {
		c := tsContext{Name: ctx.Name}
		for _, m := range ctx.Messages {
			c.Messages = append(c.Messages, newTSMessage(m))
		}
		doc.Contexts = append(doc.Contexts, c)
	}

	enc := xml.NewEncoder(cw)
	enc.Indent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return cw.n, err
	}
	_, err := io.WriteString(cw, "\n")
	return cw.n, err
}

func newTSMessage(m *Message) tsMessage {
	source := m.Source
	tm := tsMessage{
		ID:                m.ID,
		Source:            &source,
		OldSource:         m.OldSource,
		Comment:           m.Comment,
		ExtraComment:      m.ExtraComment,
		TranslatorComment: m.TranslatorComment,
	}
	if m.Numerus {
		tm.Numerus = "yes"
	}
	for _, loc := range m.Locations {
		tm.Locations = append(tm.Locations, tsLocation{Filename: loc.Filename, Line: loc.Line})
	}
	if m.Status == Unfinished && m.Translations == nil {
		return tm
	}

	tm.Translation = &tsTranslation{Type: statusNames[m.Status]}
	if m.Numerus {
		for _, form := range m.Translations {
			tm.Translation.Forms = append(tm.Translation.Forms, tsNumerusForm{Text: form})
		}
	} else if len(m.Translations) > 0 {
		tm.Translation.Text = m.Translations[0]
	}
	return tm
}
