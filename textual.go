package ooxml

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// textualExtensions is the set of file extensions whose entries get their
// payload decoded and attached as Content. OOXML packages keep all of
// their markup under these three extensions.
var textualExtensions = map[string]bool{
	"xml":  true,
	"rels": true,
	"txt":  true,
}

// isTextualEntry reports whether the entry name carries a recognized
// textual extension. Only the substring after the last "." counts, and
// the comparison is case-insensitive; a name without a "." is not textual.
func isTextualEntry(name string) bool {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return false
	}
	return textualExtensions[strings.ToLower(name[i+1:])]
}

// decodeLossy decodes data as UTF-8 text. Ill-formed byte sequences are
// substituted with U+FFFD; the decoder replaces rather than errors, so
// decoding never fails the inspection.
func decodeLossy(data []byte) string {
	out, _ := unicode.UTF8.NewDecoder().Bytes(data)
	return string(out)
}
