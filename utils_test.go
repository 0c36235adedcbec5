package linguist

import (
	"errors"
	"reflect"
	"testing"
)

func assert_equal(t *testing.T, expected string, got string) {
	t.Helper()
	if expected != got {
		t.Logf("%q != %q", expected, got)
		t.Fail()
	}
}

func assertDeepEqual(t *testing.T, expected, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Logf("%v != %v", expected, got)
		t.Fail()
	}
}

func assertTr(t *testing.T, expected string, got string, err error) {
	t.Helper()
	if err != nil {
		t.Logf("unexpected error: %v", err)
		t.Fail()
		return
	}
	assert_equal(t, expected, got)
}

func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Logf("error %v is not %v", err, target)
		t.Fail()
	}
}

func mustParseFile(t *testing.T, locale string) *Dictionary {
	t.Helper()
	d, err := ParseTSFile("testdata/harbour-whisperfish-"+locale+".ts", locale)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
