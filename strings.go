package nwscript

import (
	"golang.org/x/text/encoding/charmap"
)

// DecodeLegacyString decodes a CONST string/resref payload that was
// authored in the legacy single-byte codepage NWN-era game text commonly
// shipped in (Windows-1252), returning UTF-8. Bytes that are already valid
// UTF-8 ASCII round-trip unchanged, since Windows-1252 agrees with ASCII
// below 0x80; only the upper half differs.
func DecodeLegacyString(raw []byte) string {
	out, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(out)
}
