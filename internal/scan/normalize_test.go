package scan

import (
	"bytes"
	"testing"
)

func TestNormalizeLua(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"line comment", "-- comment\nlocal x = 1", "localx=1"},
		{"trailing line comment", "local x = 1 -- set x", "localx=1"},
		{"block comment", "--[[ a block\ncomment ]]local x = 1", "localx=1"},
		{"leveled block comment", "--[==[ nested ]] still comment ]==]local x = 1", "localx=1"},
		{"comment marker inside string", `local s = "-- not a comment"`, `locals="-- not a comment"`},
		{"comment marker inside long string", "local s = [[keep -- this]]", "locals=[[keep -- this]]"},
		{"quote inside comment", "-- don't\nlocal x = 1", "localx=1"},
		{"only whitespace", " \t\r\n", ""},
		{"double unary minus keeps a gap", "local x = a - -b", "localx=a- -b"},
		{"adjacent dashes after long comment", "a - --[[c]] -b", "a- -b"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize([]byte(tc.input), ".lua")
			if string(got) != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeXML(t *testing.T) {
	input := "<Ui>\n  <!-- layout frame -->\n  <Frame name=\"Foo\"/>\n</Ui>"
	want := `<Ui><Framename="Foo"/></Ui>`

	got := Normalize([]byte(input), ".xml")
	if string(got) != want {
		t.Fatalf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizeExtensionCaseInsensitive(t *testing.T) {
	input := []byte("-- c\nlocal x = 1")

	lower := Normalize(input, ".lua")
	upper := Normalize(input, ".LUA")

	if !bytes.Equal(lower, upper) {
		t.Fatalf("extension case changed normalization: %q vs %q", lower, upper)
	}
}

func TestNormalizeBinaryPassthrough(t *testing.T) {
	input := []byte{0x42, 0x4C, 0x50, 0x00, 0x20, 0x0A, 0xFF}

	got := Normalize(input, ".blp")
	if !bytes.Equal(got, input) {
		t.Fatalf("binary content was modified: %v", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []struct {
		content string
		ext     string
	}{
		{"-- comment\nlocal x = 1", ".lua"},
		{"local s = \"-- kept\"\nreturn s", ".lua"},
		{"local x = a - -b", ".lua"},
		{"a - --[[c]] -b\nreturn a", ".lua"},
		{"<Ui><!-- c --><Frame/></Ui>", ".xml"},
		{"<Ui>\n  <! -- not a comment -->\n</Ui>", ".xml"},
		{"already normalized", ".lua"},
	}

	for _, tc := range inputs {
		once := Normalize([]byte(tc.content), tc.ext)
		twice := Normalize(once, tc.ext)
		if !bytes.Equal(once, twice) {
			t.Fatalf("normalize not idempotent for %q: %q then %q", tc.content, once, twice)
		}
	}
}

func TestNormalizedVariantsHashIdentically(t *testing.T) {
	// Whitespace-only and comment-only edits must not change a file's
	// fingerprint.
	base := Normalize([]byte("local x = 1\nreturn x"), ".lua")
	edited := Normalize([]byte("-- reworked comments\nlocal x  =  1\n\n\nreturn x -- done"), ".lua")

	if HashBuffer(base) != HashBuffer(edited) {
		t.Fatalf("cosmetic edit changed hash: %d vs %d", HashBuffer(base), HashBuffer(edited))
	}
}
