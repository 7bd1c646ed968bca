package nwscript

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeLegacyStringASCIIRoundTrips(t *testing.T) {
	want := "GetIsObjectValid"
	if got := DecodeLegacyString([]byte(want)); got != want {
		t.Errorf("DecodeLegacyString(%q) = %q, want unchanged", want, got)
	}
}

func TestDecodeLegacyStringWindows1252UpperHalf(t *testing.T) {
	// 0xE9 is Windows-1252 for U+00E9 (e acute), used by localized NWN
	// module strings that predate UTF-8 script text.
	got := DecodeLegacyString([]byte{'r', 0xE9, 's', 'u', 'm', 0xE9})
	want := "résumé"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodeLegacyString mismatch (-want +got):\n%s", diff)
	}
}
