package extract

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decodeText decodes file bytes to a string. UYAP text exports are either
// UTF-8 or Windows-1254; anything that is not valid UTF-8 gets the Turkish
// codepage treatment.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.Windows1254.NewDecoder().Bytes(data)
	if err != nil {
		// Keep what survives; the classifier treats garbage as Unknown.
		return strings.ToValidUTF8(string(data), "")
	}
	return string(decoded)
}

// fixMojibake re-decodes a string through Windows-1254 when it is not valid
// UTF-8, which is how PDF content streams with Turkish legacy encodings
// usually surface.
func fixMojibake(s string) string {
	if utf8.ValidString(s) && !strings.ContainsRune(s, '�') {
		return s
	}
	decoded, err := charmap.Windows1254.NewDecoder().String(s)
	if err != nil {
		return strings.ToValidUTF8(s, "")
	}
	return decoded
}
