package export

import (
	"bytes"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	. "gopkg.in/check.v1"

	"github.com/whisperfish/go-linguist"
)

func Test(t *testing.T) {
	TestingT(t)
}

var _ = Suite(exportSuite{})

type exportSuite struct{}

func parse(c *C, locale string) *linguist.Dictionary {
	d, err := linguist.ParseTSFile("../../testdata/harbour-whisperfish-"+locale+".ts", locale)
	c.Assert(err, IsNil)
	return d
}

func (exportSuite) TestTemplate(c *C) {
	for _, test := range []struct {
		in, out string
	}{
		{"Copyright", "Copyright"},
		{"Gerät %1", "Gerät {{.Arg1}}"},
		{"%1 ir %n kiti rašo", "{{.Arg1}} ir {{.Count}} kiti rašo"},
		{"%Ln messages", "{{.Count}} messages"},
		{"%L2 of %12", "{{.Arg2}} of {{.Arg12}}"},
		{"Kopijuoti% n žinutę", "Kopijuoti% n žinutę"},
		{"100% %0 %", "100% %0 %"},
	} {
		c.Check(Template(test.in), Equals, test.out, Commentf("input: %q", test.in))
	}
}

func (exportSuite) TestMessages(c *C) {
	de := parse(c, "de")
	msgs := Messages(de)
	// unfinished entries are left out
	c.Check(len(msgs), Equals, 145-14)

	byID := make(map[string]*i18n.Message)
	for _, msg := range msgs {
		byID[msg.ID] = msg
	}
	c.Check(byID["whisperfish-build-id"], IsNil)
	c.Check(byID["whisperfish-device-name"].Other, Equals, "Gerät {{.Arg1}}")
	c.Check(*byID["whisperfish-group-n-members"], DeepEquals, i18n.Message{
		ID:          "whisperfish-group-n-members",
		Description: "The number of members in a group, you included",
		One:         "{{.Count}} Mitglied",
		Many:        "{{.Count}} Mitglieder",
		Other:       "{{.Count}} Mitglieder",
	})
	c.Check(Filename(de), Equals, "active.de.toml")
}

func (exportSuite) TestBundle(c *C) {
	for _, locale := range []string{"lt", "fr", "nl_BE"} {
		var buf bytes.Buffer
		d := parse(c, locale)
		c.Assert(WriteTOML(&buf, d), IsNil)

		bundle := i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		_, err := bundle.ParseMessageFileBytes(buf.Bytes(), Filename(d))
		c.Assert(err, IsNil, Commentf("locale %s", locale))
	}

	var buf bytes.Buffer
	lt := parse(c, "lt")
	c.Assert(WriteTOML(&buf, lt), IsNil)
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	_, err := bundle.ParseMessageFileBytes(buf.Bytes(), "active.lt.toml")
	c.Assert(err, IsNil)
	localizer := i18n.NewLocalizer(bundle, "lt")

	translations := linguist.NewTranslations("../../testdata", "harbour-whisperfish", nil)
	cat := translations.Locale("lt")
	for _, n := range []int{0, 1, 2, 5, 10, 11, 21, 22} {
		want, err := cat.TrN("whisperfish-group-n-members", n)
		c.Assert(err, IsNil)
		got, err := localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    "whisperfish-group-n-members",
			PluralCount:  n,
			TemplateData: map[string]any{"Count": n},
		})
		c.Assert(err, IsNil)
		c.Check(got, Equals, want, Commentf("count %d", n))
	}

	got, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    "whisperfish-build-id",
		TemplateData: map[string]any{"Arg1": "42"},
	})
	c.Assert(err, IsNil)
	c.Check(got, Equals, "Laidos ID: 42")

	got, err = localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    "whisperfish-typing-3-plus",
		TemplateData: map[string]any{"Arg1": "Ana", "Count": 4},
	})
	c.Assert(err, IsNil)
	c.Check(got, Equals, "Ana ir 4 kiti rašo")
}
