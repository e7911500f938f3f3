package csvimport

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const bom = "\ufeff"

// Decode returns the file contents as UTF-8: a leading BOM is dropped and
// input that is not valid UTF-8 is read as Latin-1.
func Decode(raw []byte) ([]byte, error) {
	raw = bytes.TrimPrefix(raw, []byte(bom))
	if utf8.Valid(raw) {
		return raw, nil
	}
	return charmap.ISO8859_1.NewDecoder().Bytes(raw)
}
