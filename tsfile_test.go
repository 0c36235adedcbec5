package linguist

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseTSFile(t *testing.T) {
	de := mustParseFile(t, "de")
	assert_equal(t, "de", de.Language.String())
	assert_equal(t, "de_DE", de.FileLanguage)
	assert_equal(t, "2.1", de.Version)
	assertDeepEqual(t, 145, len(de.All()))
	assertDeepEqual(t, 145, de.Len())
	assertDeepEqual(t, 2, de.Rule().Forms)

	m, ok := de.Message("whisperfish-delete-session")
	if !ok {
		t.Fatal("whisperfish-delete-session not found")
	}
	assert_equal(t, "Delete Conversation", m.Source)
	assert_equal(t, "Delete all messages from session menu", m.ExtraComment)
	assertDeepEqual(t, []Location{{Filename: "../qml/delegates/Session.qml", Line: "129"}}, m.Locations)
	assertDeepEqual(t, []string{"Unterhaltung löschen"}, m.Translations)
	assertDeepEqual(t, Finished, m.Status)
	assertDeepEqual(t, 24, m.Line)

	m, _ = de.Message("whisperfish-phone-number-input-label")
	assertDeepEqual(t, Unfinished, m.Status)
	assert_equal(t, "Phone number (E.164 format)", m.OldSource)
	assertDeepEqual(t, false, de.Translated(m))

	m, _ = de.Message("whisperfish-group-n-members")
	assertDeepEqual(t, true, m.Numerus)
	assertDeepEqual(t, []string{"%n Mitglied", "%n Mitglieder"}, m.Translations)
	assertDeepEqual(t, true, de.Translated(m))
}

func TestParseTSVanished(t *testing.T) {
	tr := mustParseFile(t, "tr")
	if _, ok := tr.Message("whisperfish-delete-session"); ok {
		t.Fatal("vanished entry must not be indexed")
	}
	var vanished []*Message
	for _, m := range tr.All() {
		if m.Status == Vanished {
			vanished = append(vanished, m)
		}
	}
	assertDeepEqual(t, 29, len(vanished))
	assertDeepEqual(t, 232-29, tr.Len())
	assertDeepEqual(t, []Location(nil), vanished[0].Locations)
}

func TestParseTSPluralForms(t *testing.T) {
	lt := mustParseFile(t, "lt")
	assertDeepEqual(t, 3, lt.Rule().Forms)

	m, _ := lt.Message("whisperfish-cover-unread-label")
	assertDeepEqual(t, []string{"Neskaitytas<br/>pranešimas", "Neskaityti<br/>pranešimai", "Neskaitytų<br/>pranešimų"}, m.Translations)

	m, _ = lt.Message("whisperfish-group-n-members")
	assert_equal(t, "%n narys", lt.form(m, 1))
	assert_equal(t, "%n nariai", lt.form(m, 2))
	assert_equal(t, "%n narių", lt.form(m, 10))
	assert_equal(t, "%n narys", lt.form(m, 21))
	assert_equal(t, "%n narių", lt.form(m, 0))
}

func TestParseTSDeclaredLocale(t *testing.T) {
	d := mustParseFile(t, "nl_BE")
	assert_equal(t, "nl-BE", d.Language.String())

	// Without a declared locale the file attribute is used
	d, err := ParseTSFile("testdata/harbour-whisperfish-de.ts", "")
	if err != nil {
		t.Fatal(err)
	}
	assert_equal(t, "de-DE", d.Language.String())
}

func TestParseTSCharset(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<TS version=\"2.1\" language=\"de\"><context><name>main</name>" +
		"<message id=\"greeting\"><source>Greetings</source><translation>Gr\xfc\xdfe</translation></message>" +
		"</context></TS>"
	d, err := ParseTS(strings.NewReader(doc), "de")
	if err != nil {
		t.Fatal(err)
	}
	m, _ := d.Message("greeting")
	assertDeepEqual(t, []string{"Grüße"}, m.Translations)
	assert_equal(t, "main", m.Context)
}

func TestParseTSErrors(t *testing.T) {
	for _, test := range []struct {
		doc  string
		line int
	}{
		{"", 0},
		{"not xml at all", 0},
		{"<?xml version=\"1.0\"?>\n<html></html>", 2},
		{"<TS version=\"2.1\">\n<context>\n<message id=\"a\">", 3},
		{"<TS><context><message id=\"a\"><source>x</translation></message></context></TS>", 1},
		{"<?xml version=\"1.0\" encoding=\"x-unknown\"?><TS/>", 0},
	} {
		_, err := ParseTS(strings.NewReader(test.doc), "de")
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%q: expected ParseError, got %v", test.doc, err)
			continue
		}
		assert_equal(t, "de", perr.Locale)
		if test.line > 0 && perr.Line != test.line {
			t.Errorf("%q: error at line %d, want %d", test.doc, perr.Line, test.line)
		}
	}
}

func TestParseTSSchemaErrors(t *testing.T) {
	for _, test := range []struct {
		doc    string
		id     string
		reason string
	}{{
		doc:    `<TS><context><name>c</name><message><source>x</source></message></context></TS>`,
		reason: "message without id",
	}, {
		doc:    `<TS><context><name>c</name><message id="a"><translation>x</translation></message></context></TS>`,
		id:     "a",
		reason: "message without source",
	}, {
		doc: `<TS><context><name>c</name>
<message id="a"><source>x</source></message>
<message id="a"><source>y</source></message></context></TS>`,
		id:     "a",
		reason: "duplicate message id",
	}, {
		doc:    `<TS><context><message id="a"><source>x</source><translation type="bogus">x</translation></message></context></TS>`,
		id:     "a",
		reason: `unknown translation type "bogus"`,
	}} {
		_, err := ParseTS(strings.NewReader(test.doc), "fr")
		var serr *SchemaError
		if !errors.As(err, &serr) {
			t.Errorf("expected SchemaError, got %v", err)
			continue
		}
		assert_equal(t, test.id, serr.ID)
		assert_equal(t, test.reason, serr.Reason)
		assert_equal(t, "fr", serr.Locale)
	}

	_, err := ParseTS(strings.NewReader(`<TS language="??"/>`), "")
	var serr *SchemaError
	if !errors.As(err, &serr) {
		t.Errorf("expected SchemaError for invalid language, got %v", err)
	}
}

func TestParseTSTolerated(t *testing.T) {
	doc := `<TS version="2.1" language="fr">
<context>
    <name>x</name>
    <message id="no-translation">
        <location filename="a.qml" line="1"/>
        <location filename="b.qml" line="+3"/>
        <source>Hello</source>
    </message>
    <message id="obsolete">
        <source>Old</source>
        <translation type="obsolete">Vieux</translation>
    </message>
    <message id="extra">
        <source>S</source>
        <userdata>ignored</userdata>
        <translation>T</translation>
    </message>
</context>
</TS>`
	d, err := ParseTS(strings.NewReader(doc), "")
	if err != nil {
		t.Fatal(err)
	}
	m, ok := d.Message("no-translation")
	if !ok {
		t.Fatal("no-translation not found")
	}
	assertDeepEqual(t, Unfinished, m.Status)
	assertDeepEqual(t, []string(nil), m.Translations)
	assertDeepEqual(t, 2, len(m.Locations))
	assert_equal(t, "+3", m.Locations[1].Line)

	_, ok = d.Message("obsolete")
	assertDeepEqual(t, false, ok)
	assertDeepEqual(t, 3, len(d.All()))
	assertDeepEqual(t, Obsolete, d.All()[1].Status)
}

func stripLines(msgs []*Message) []Message {
	out := make([]Message, len(msgs))
	for i, m := range msgs {
		out[i] = *m
		out[i].Line = 0
	}
	return out
}

func TestWriteToRoundTrip(t *testing.T) {
	for _, locale := range []string{"de", "fr", "lt", "nl_BE", "tr"} {
		orig := mustParseFile(t, locale)

		var buf bytes.Buffer
		n, err := orig.WriteTo(&buf)
		if err != nil {
			t.Fatal(err)
		}
		assertDeepEqual(t, int64(buf.Len()), n)
		if !bytes.HasPrefix(buf.Bytes(), []byte("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<!DOCTYPE TS>\n<TS version=\"2.1\"")) {
			t.Errorf("%s: unexpected header %q", locale, buf.String()[:80])
		}

		again, err := ParseTS(&buf, locale)
		if err != nil {
			t.Fatalf("%s: %v", locale, err)
		}
		assert_equal(t, orig.FileLanguage, again.FileLanguage)
		assert_equal(t, orig.Version, again.Version)
		assertDeepEqual(t, orig.Len(), again.Len())
		assertDeepEqual(t, stripLines(orig.All()), stripLines(again.All()))
	}
}

func TestWriteToEscapesMarkup(t *testing.T) {
	lt := mustParseFile(t, "lt")
	var buf bytes.Buffer
	if _, err := lt.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<numerusform>Neskaitytas&lt;br/&gt;pranešimas</numerusform>") {
		t.Error("markup in translations was not escaped")
	}
	if !strings.Contains(buf.String(), `<translation type="vanished">`) {
		t.Error("vanished entries were not written")
	}
}

func TestBlobRoundTrip(t *testing.T) {
	fr := mustParseFile(t, "fr")
	var buf bytes.Buffer
	if err := WriteBlob(&buf, fr); err != nil {
		t.Fatal(err)
	}
	if bytes.HasPrefix(buf.Bytes(), []byte("<?xml")) {
		t.Fatal("blob is not compressed")
	}
	again, err := ReadBlob(&buf, "fr")
	if err != nil {
		t.Fatal(err)
	}
	assertDeepEqual(t, stripLines(fr.All()), stripLines(again.All()))

	_, err = ReadBlob(strings.NewReader("garbage"), "fr")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("expected ParseError, got %v", err)
	}
}
