package stats

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "gopkg.in/check.v1"
)

func Test(t *testing.T) {
	TestingT(t)
}

var _ = Suite(statsSuite{})

type statsSuite struct{}

func (statsSuite) TestScan(c *C) {
	r, err := Scan("../../testdata", "harbour-whisperfish")
	c.Assert(err, IsNil)
	c.Check(r.Languages, DeepEquals, []Language{
		{"de", 145, 14},
		{"fr", 136, 4},
		{"lt", 287, 28},
		{"nl_BE", 190, 0},
		{"tr", 232, 0},
	})
	c.Check(r.Translated, Equals, 95)
	c.Check(r.Finished, DeepEquals, []string{"nl_BE", "tr"})
	c.Check(r.Unfinished, DeepEquals, []string{"de", "fr", "lt"})
	c.Check(r.LocalizedBadge(), Equals, "https://img.shields.io/badge/Localized-95%25-brightgreen")
	c.Check(r.LanguagesBadge(), Equals, "https://img.shields.io/badge/Languages-2%2F5-critical")
}

func (statsSuite) TestScanSkipsBadNames(c *C) {
	dir := c.MkDir()
	data, err := os.ReadFile("../../testdata/harbour-whisperfish-tr.ts")
	c.Assert(err, IsNil)
	c.Assert(os.WriteFile(filepath.Join(dir, "harbour-whisperfish-tr.ts"), data, 0644), IsNil)
	c.Assert(os.WriteFile(filepath.Join(dir, "tr.ts"), data, 0644), IsNil)
	c.Assert(os.WriteFile(filepath.Join(dir, "README"), []byte("hello"), 0644), IsNil)

	r, err := Scan(dir, "harbour-whisperfish")
	c.Assert(err, IsNil)
	c.Check(r.Languages, DeepEquals, []Language{{"tr", 232, 0}})
	c.Check(r.Translated, Equals, 100)
	c.Check(r.LanguagesBadge(), Equals, "https://img.shields.io/badge/Languages-1%2F1-brightgreen")
}

func (statsSuite) TestScanEmpty(c *C) {
	_, err := Scan(c.MkDir(), "harbour-whisperfish")
	c.Check(err, Equals, ErrNoCatalogs)

	_, err = Scan(filepath.Join(c.MkDir(), "missing"), "harbour-whisperfish")
	c.Check(os.IsNotExist(err), Equals, true)
}

func (statsSuite) TestBadgeColor(c *C) {
	for _, test := range []struct {
		percent int
		color   string
	}{
		{100, "brightgreen"},
		{90, "brightgreen"},
		{89, "orange"},
		{70, "orange"},
		{69, "red"},
		{50, "red"},
		{49, "critical"},
		{0, "critical"},
	} {
		c.Check(BadgeColor(test.percent), Equals, test.color, Commentf("percent: %d", test.percent))
	}
}

func (statsSuite) TestComputeRoundsDown(c *C) {
	r, err := Compute([]Language{{"b", 3, 1}, {"a", 0, 0}})
	c.Assert(err, IsNil)
	c.Check(r.Translated, Equals, 66)
	c.Check(r.Finished, DeepEquals, []string{"a"})
	c.Check(r.LocalizedBadge(), Equals, "https://img.shields.io/badge/Localized-66%25-red")
	c.Check(r.LanguagesBadge(), Equals, "https://img.shields.io/badge/Languages-1%2F2-red")
}

func (statsSuite) TestWrite(c *C) {
	r, err := Compute([]Language{{"lt", 287, 28}, {"tr", 232, 0}})
	c.Assert(err, IsNil)
	var buf bytes.Buffer
	c.Assert(r.Write(&buf), IsNil)
	c.Check(buf.String(), Equals, `lt has 28 unfinished translations of 287
tr has 0 unfinished translations of 232
94% lines are translated
1 of 2 languages are translated
https://img.shields.io/badge/Localized-94%25-brightgreen
https://img.shields.io/badge/Languages-1%2F2-red
`)
}
